package types

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=active disabled suspended"`
	Reason string `json:"reason" binding:"max=255"`
}

type UpdateTierReq struct {
	MemberLevel string `json:"member_level" binding:"required,oneof=bronze silver gold premium svip"`
}

type EmailVerifiedReq struct {
	Verified *bool  `json:"verified" binding:"required"`
	Reason   string `json:"reason" binding:"max=255"`
}

type BatchLevelReq struct {
	MemberIDs []uint64 `json:"member_ids" binding:"required,min=1,max=1000"`
	Level     uint     `json:"level" binding:"required"`
}

type LeaderboardItem struct {
	Rank     int        `json:"rank"`
	MemberID uint64     `json:"member_id"`
	Nickname string     `json:"nickname"`
	Points   int64      `json:"points"`
	Level    LevelBrief `json:"level"`
}

type SaveRuleReq struct {
	Action      string `json:"action" binding:"required,max=64"`
	Points      int64  `json:"points" binding:"min=-1000000000,max=1000000000"`
	Description string `json:"description" binding:"max=255"`
	Enabled     bool   `json:"enabled"`
}

type SaveModuleReq struct {
	Enabled        bool           `json:"enabled"`
	CustomSettings map[string]any `json:"custom_settings"`
}

type ModuleAccessResp struct {
	Module  string `json:"module"`
	Action  string `json:"action"`
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
