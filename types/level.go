package types

type LevelBrief struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	BadgeColor string `json:"badge_color"`
}

type LevelItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	MinPoints   int64    `json:"min_points"`
	MaxPoints   *int64   `json:"max_points"`
	BadgeColor  string   `json:"badge_color"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type SaveLevelReq struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name" binding:"required,max=32"`
	MinPoints   int64    `json:"min_points" binding:"min=0"`
	MaxPoints   *int64   `json:"max_points"`
	BadgeColor  string   `json:"badge_color" binding:"max=16"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}
