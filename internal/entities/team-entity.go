package entities

type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Leader       string `json:"leader"`
	MembersCount int    `json:"members_count"`
}
