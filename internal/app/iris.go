package app

import "strings"

// irisReplies are the scripted Iris responses, matched in order; the first
// keyword found in the message wins.
var irisReplies = []struct {
	keyword string
	reply   string
}{
	{"percy", "Ah, Percy Jackson! A hero of many quests. What about him?"},
	{"quest", "Quests await! Check the Quest Board for your next assignment."},
	{"hello", "Greetings, demigod. How may I assist your communication?"},
}

const irisDefaultReply = "The mist is thick, demigod. Your message is received."

// IrisReply returns the scripted response for an Iris message. Matching is
// case-insensitive; unmatched messages get the default acknowledgement.
func (p *PortalService) IrisReply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range irisReplies {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return irisDefaultReply
}
