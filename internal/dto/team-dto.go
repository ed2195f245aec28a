package dto

type TeamPayloadDTO struct {
	Name         string `json:"name"          validate:"required"`
	Leader       string `json:"leader"        validate:"required"`
	MembersCount int    `json:"members_count" validate:"gte=0"`
}
