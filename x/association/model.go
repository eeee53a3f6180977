package association

type skillRequest struct {
	BonusLevel int     `json:"bonusLevel"`
	Points     float64 `json:"points"`
}

type spellRequest struct {
	BonusLevel int     `json:"bonusLevel"`
	Points     float64 `json:"points"`
}

type possessionRequest struct {
	Quantity int `json:"quantity"`
}
