package domain

// Option is one selectable quiz answer, tagged with the godly parent it votes for.
type Option struct {
	Text string `json:"text"`
	God  string `json:"god"`
}

// Question models one multiple-choice quiz question.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// GodProfile describes a quiz outcome: a godly parent, their cabin, and portrait.
type GodProfile struct {
	Description string `json:"description"`
	Cabin       string `json:"cabin"`
	Image       string `json:"image"`
}

// QuizContent is the immutable reference data for the godly-parent quiz.
// Fallback names the profile used when no questions were answered.
type QuizContent struct {
	Questions []Question            `json:"questions"`
	Profiles  map[string]GodProfile `json:"profiles"`
	Fallback  string                `json:"fallback"`
}

// DestinationKind distinguishes plain scene transitions from encounter edges.
type DestinationKind string

const (
	DestScene   DestinationKind = "scene"
	DestBattle  DestinationKind = "battle"
	DestPuzzle  DestinationKind = "puzzle"
	DestVictory DestinationKind = "victory"
)

// Destination is where a choice leads: a scene index, or a sentinel encounter.
// Monster selects the monster template for battle destinations.
type Destination struct {
	Kind    DestinationKind `json:"kind"`
	Scene   int             `json:"scene,omitempty"`
	Monster int             `json:"monster,omitempty"`
}

// Choice is one action available in a scene.
type Choice struct {
	Label string      `json:"label"`
	Dest  Destination `json:"dest"`
}

// SceneEffect is applied exactly once each time its scene is entered.
type SceneEffect struct {
	Heal int    `json:"heal,omitempty"`
	Item string `json:"item,omitempty"`
}

// Scene is one node in the labyrinth's traversal graph.
type Scene struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Choices     []Choice     `json:"choices"`
	Effect      *SceneEffect `json:"effect,omitempty"`
}

// Monster is an immutable battle template; combat works on a copy.
type Monster struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Health int    `json:"health"`
	Attack int    `json:"attack"`
}

// Puzzle gates a door with a free-text riddle; the answer match is
// case-insensitive and trimmed.
type Puzzle struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LabyrinthContent is the reference data driving the adventure engine.
type LabyrinthContent struct {
	Scenes   []Scene   `json:"scenes"`
	Monsters []Monster `json:"monsters"`
	Puzzles  []Puzzle  `json:"puzzles"`
}

// Challenge is one arena trial: identify or outsmart a monster for points.
type Challenge struct {
	Type     string   `json:"type"`
	Monster  string   `json:"monster"`
	Image    string   `json:"image"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  string   `json:"correct"`
	Points   int      `json:"points"`
}

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CampContent bundles all reference data a portal session needs.
type CampContent struct {
	Quiz       QuizContent           `json:"quiz"`
	Labyrinth  LabyrinthContent      `json:"labyrinth"`
	Challenges []Challenge           `json:"challenges"`
	Locations  map[string]Coordinate `json:"locations"`
}

// Quest is one quest-board entry.
type Quest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Asset is one cached offline resource.
type Asset struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}
