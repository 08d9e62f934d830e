package domain

// LawyerPersona describes one AI lawyer specialization. Sessions embed a copy
// of the persona selected at creation time, so changing the catalog never
// rewrites history.
type LawyerPersona struct {
	ID                   int    `json:"id"`
	Specialist           string `json:"specialist"`
	Description          string `json:"description"`
	AgentPrompt          string `json:"agentPrompt"`
	SubscriptionRequired bool   `json:"subscriptionRequired"`
}
