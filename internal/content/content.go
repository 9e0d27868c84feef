// Package content holds the built-in camp reference data: the godly-parent
// quiz, the labyrinth graph, the arena challenge pool, and the camp map.
package content

import "camp-portal/internal/domain"

const fallbackGod = "Mortal (or Minor God)"

// Camp returns the full built-in content bundle. Deployments that manage
// content in Postgres override this through the content loader instead.
func Camp() domain.CampContent {
	return domain.CampContent{
		Quiz:       quiz(),
		Labyrinth:  labyrinth(),
		Challenges: challenges(),
		Locations:  locations(),
	}
}

func quiz() domain.QuizContent {
	return domain.QuizContent{
		Fallback: fallbackGod,
		Questions: []domain.Question{
			{
				Prompt: "When faced with a challenge, your first instinct is to...",
				Options: []domain.Option{
					{Text: "Formulate a detailed plan and strategy.", God: "Athena"},
					{Text: "Charge in headfirst, relying on strength and courage.", God: "Ares"},
					{Text: "Find the quickest and most efficient route around it.", God: "Hermes"},
					{Text: "Look for natural elements (water, earth) to assist you.", God: "Poseidon"},
					{Text: "Inspire others with your presence and leadership.", God: "Zeus"},
				},
			},
			{
				Prompt: "What kind of talent comes most naturally to you?",
				Options: []domain.Option{
					{Text: "Athletics, combat, or physical prowess.", God: "Ares"},
					{Text: "Art, music, healing, or prophecy.", God: "Apollo"},
					{Text: "Strategy, invention, or learning new things.", God: "Athena"},
					{Text: "Diplomacy, charm, or making others feel good.", God: "Aphrodite"},
					{Text: "Building, crafting, or working with your hands.", God: "Hephaestus"},
				},
			},
			{
				Prompt: "Which environment do you feel most at home in?",
				Options: []domain.Option{
					{Text: "The vastness of the sea or a quiet beach.", God: "Poseidon"},
					{Text: "A bustling city, full of opportunities.", God: "Hermes"},
					{Text: "A quiet library or a busy workshop.", God: "Athena"},
					{Text: "Deep underground, caves, or ancient places.", God: "Hades"},
					{Text: "The wilderness, forests, or open fields.", God: "Artemis"},
				},
			},
			{
				Prompt: "Your ideal weapon would be:",
				Options: []domain.Option{
					{Text: "A powerful sword or spear.", God: "Ares"},
					{Text: "A bow and arrow, or a musical instrument.", God: "Apollo"},
					{Text: "A shield that can transform, or a cunning device.", God: "Athena"},
					{Text: "Anything that can control water or summon sea creatures.", God: "Poseidon"},
					{Text: "A simple dagger, easily concealed.", God: "Hermes"},
				},
			},
			{
				Prompt: "What do you value most in a relationship?",
				Options: []domain.Option{
					{Text: "Passion and intense emotion.", God: "Aphrodite"},
					{Text: "Unwavering loyalty and protection.", God: "Hera"},
					{Text: "Shared wisdom and intellectual connection.", God: "Athena"},
					{Text: "Freedom and mutual understanding.", God: "Artemis"},
					{Text: "A grand adventure together.", God: "Zeus"},
				},
			},
		},
		Profiles: map[string]domain.GodProfile{
			"Zeus": {
				Description: "You command the skies and lead with authority. You are ambitious, powerful, and a natural leader, but be wary of your temper.",
				Cabin:       "Cabin 1",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/c/cf/Jupiter_and_Thetis_by_Jean_Auguste_Dominique_Ingres.jpg/330px-Jupiter_and_Thetis_by_Jean_Auguste_Dominique_Ingres.jpg",
			},
			"Hera": {
				Description: "While Hera has no demigod children, you embody her spirit of loyalty, family, and regality. You are protective and possess great dignity.",
				Cabin:       "Cabin 2 (Hera's Cabin - Honorary)",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d7/Hera_%28Persephone%29_by_Albrecht_D%C3%BCrer.png/330px-Hera_%28Persephone%29_by_Albrecht_D%C3%BCrer.png",
			},
			"Poseidon": {
				Description: "You are the son/daughter of the Sea God! You are powerful, sometimes moody, but deeply loyal and resourceful. Water is your domain.",
				Cabin:       "Cabin 3",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e0/Statue-Zeus-Poseidon.jpg/330px-Statue-Zeus-Poseidon.jpg",
			},
			"Demeter": {
				Description: "You are connected to the earth and cycles of nature. You are nurturing, practical, and appreciate the simple beauty of growth and harvest.",
				Cabin:       "Cabin 4",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/c/cf/Goddess_Demeter_Roman_Era_Istanbul_Archaeological_Museums.jpg/330px-Goddess_Demeter_Roman_Era_Istanbul_Archaeological_Museums.jpg",
			},
			"Ares": {
				Description: "Conflict and strength define you. You are brave, assertive, and excel in combat, never shying away from a fight.",
				Cabin:       "Cabin 5",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8c/Ares_Borghese_Louvre_MR302.jpg/330px-Ares_Borghese_Louvre_Ma302.jpg",
			},
			"Athena": {
				Description: "Wisdom, strategy, and justice guide you. You are a brilliant tactician, an inventor, and always seek knowledge.",
				Cabin:       "Cabin 6",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e7/Pallas_Athena_%28Gustav_Klimt%29.jpg/330px-Pallas_Athena_%28Gustav_Klimt%29.jpg",
			},
			"Apollo": {
				Description: "You shine with talent in music, poetry, archery, and healing. You are optimistic, creative, and bring light wherever you go.",
				Cabin:       "Cabin 7",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Apollo-sculpture_Musei_Vaticani.jpg/330px-Apollo_sculpture_Musei_Vaticani.jpg",
			},
			"Artemis": {
				Description: "While Artemis has no demigod children, you embody her independent, strong-willed, and fierce spirit. You are a skilled hunter and protector of nature.",
				Cabin:       "Cabin 8 (Artemis's Cabin - Honorary)",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/b/ba/Artemis_Versailles_MR_218.jpg/330px-Artemis_Versailles_MR_218.jpg",
			},
			"Hephaestus": {
				Description: "You possess a talent for crafting, building, and invention. You are resourceful, persistent, and can find beauty in the unconventional.",
				Cabin:       "Cabin 9",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/7/77/Hephaestus_Louvre_Ma312.jpg/330px-Hephaestus_Louvre_Ma312.jpg",
			},
			"Aphrodite": {
				Description: "Beauty, charm, and love are your greatest assets. You are charismatic, can influence emotions, and have an eye for aesthetics.",
				Cabin:       "Cabin 10",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/9/91/Aphrodite_of_Knidos_Altemps.jpg/330px-Aphrodite_of_Knidos_Altemps.jpg",
			},
			"Hermes": {
				Description: "You are quick-witted, resourceful, and excel in communication and travel. You might be a trickster, but you're also incredibly adaptable.",
				Cabin:       "Cabin 11",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4b/Hermes_Belvedere_pushkin_museum.jpg/330px-Hermes_Belvedere_pushkin_museum.jpg",
			},
			"Dionysus": {
				Description: "You embrace life with exuberance and can inspire strong emotions. You are charismatic, enjoy celebration, and might have a mischievous side.",
				Cabin:       "Cabin 12",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b5/Dionysos_Liebieghaus_202.jpg/330px-Dionysos_Liebieghaus_202.jpg",
			},
			"Hades": {
				Description: "You are often misunderstood, but possess immense power over wealth and the underworld. You are independent, intense, and deeply loyal to those you care for.",
				Cabin:       "Cabin 13",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7b/Hades_Altemps.jpg/330px-Hades_Altemps.jpg",
			},
			fallbackGod: {
				Description: "Your destiny is still unfolding, or perhaps your godly parent is a mystery, or you're a powerful mortal ally!",
				Cabin:       "Hermes Cabin (Temporary)",
				Image:       "https://upload.wikimedia.org/wikipedia/commons/thumb/5/52/Question_mark_symbol.png/1200px-Question_mark_symbol.png",
			},
		},
	}
}

func labyrinth() domain.LabyrinthContent {
	return domain.LabyrinthContent{
		Scenes: []domain.Scene{
			{
				Title:       "You stand at the entrance of the Labyrinth.",
				Description: "Choose your path and prepare for adventure!",
				Choices: []domain.Choice{
					{Label: "left", Dest: domain.Destination{Kind: domain.DestScene, Scene: 1}},
					{Label: "right", Dest: domain.Destination{Kind: domain.DestScene, Scene: 2}},
					{Label: "forward", Dest: domain.Destination{Kind: domain.DestScene, Scene: 3}},
				},
			},
			{
				Title:       "A fork in the path. The left tunnel is dark, the right glows faintly.",
				Description: "Which way do you go?",
				Choices: []domain.Choice{
					{Label: "left", Dest: domain.Destination{Kind: domain.DestBattle}},
					{Label: "right", Dest: domain.Destination{Kind: domain.DestScene, Scene: 4}},
				},
			},
			{
				Title:       "You find a locked door with a riddle inscribed.",
				Description: "Solve the puzzle to proceed.",
				Choices: []domain.Choice{
					{Label: "puzzle", Dest: domain.Destination{Kind: domain.DestPuzzle}},
				},
			},
			{
				Title:       "A Minotaur blocks your way!",
				Description: "Prepare for battle.",
				Choices: []domain.Choice{
					{Label: "monster", Dest: domain.Destination{Kind: domain.DestBattle}},
				},
			},
			{
				Title:       "You find a healing potion.",
				Description: "You drink it and feel refreshed.",
				Choices: []domain.Choice{
					{Label: "forward", Dest: domain.Destination{Kind: domain.DestScene, Scene: 5}},
				},
				Effect: &domain.SceneEffect{Heal: 30, Item: "Healing Potion"},
			},
			{
				Title:       "You see the exit! But a Sphinx asks you a final riddle.",
				Description: "Solve it to escape.",
				Choices: []domain.Choice{
					{Label: "puzzle", Dest: domain.Destination{Kind: domain.DestVictory}},
				},
			},
		},
		Monsters: []domain.Monster{
			{
				Name:   "Minotaur",
				Image:  "https://static.wikia.nocookie.net/greekmythology/images/7/7e/Minotaur.png",
				Health: 40,
				Attack: 20,
			},
		},
		Puzzles: []domain.Puzzle{
			{Question: "Maths: What is the next number in the sequence? 2, 4, 8, 16, ...", Answer: "32"},
			{Question: "Physics: What is the SI unit of electric current?", Answer: "ampere"},
			{Question: "Chemistry: What is H2SO4 commonly known as?", Answer: "sulfuric acid"},
			{Question: "English Literature: Who wrote 'To be, or not to be'?", Answer: "shakespeare"},
			{Question: "AIML: What does 'ML' stand for in AIML?", Answer: "machine learning"},
			{Question: "DSA: Which data structure uses FIFO order?", Answer: "queue"},
			{Question: "Twisted: I am not alive, but I grow. I don't have lungs, but I need air. What am I?", Answer: "fire"},
		},
	}
}

func challenges() []domain.Challenge {
	return []domain.Challenge{
		{
			Type:     "identify",
			Monster:  "Minotaur",
			Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/6/67/Minotaur_by_George_Frederic_Watts.jpg/330px-Minotaur_by_George_Frederic_Watts.jpg",
			Question: "Identify this monster, known for its labyrinth.",
			Options:  []string{"Hydra", "Minotaur", "Gorgon", "Cyclops"},
			Correct:  "Minotaur",
			Points:   50,
		},
		{
			Type:     "identify",
			Monster:  "Hydra",
			Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/d/d3/Hydra_by_Gustave_Moreau.jpg/330px-Hydra_by_Gustave_Moreau.jpg",
			Question: "What monster grows two heads for every one cut off?",
			Options:  []string{"Chimera", "Sphinx", "Hydra", "Cerberus"},
			Correct:  "Hydra",
			Points:   75,
		},
		{
			Type:     "strategy",
			Monster:  "Medusa",
			Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a2/Caravaggio_-_Medusa.jpg/330px-Caravaggio_-_Medusa.jpg",
			Question: "How do you defeat Medusa without looking at her?",
			Options:  []string{"Use a reflective shield", "Close your eyes and attack", "Blind her with sunlight", "Distract her with music"},
			Correct:  "Use a reflective shield",
			Points:   100,
		},
		{
			Type:     "identify",
			Monster:  "Cyclops",
			Image:    "https://upload.wikimedia.org/wikipedia/commons/thumb/0/03/Cyclops_by_Odilon_Redon.jpg/330px-Cyclops_by_Odilon_Redon.jpg",
			Question: "This one-eyed giant is often a shepherd or blacksmith.",
			Options:  []string{"Centaur", "Satyr", "Cyclops", "Harpy"},
			Correct:  "Cyclops",
			Points:   60,
		},
	}
}

func locations() map[string]domain.Coordinate {
	return map[string]domain.Coordinate{
		"Arena":           {Lat: 38.9072, Lon: -77.0369},
		"Big House":       {Lat: 38.9000, Lon: -77.0300},
		"Dining Pavilion": {Lat: 38.9100, Lon: -77.0400},
	}
}
