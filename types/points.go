package types

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID            uint64 `json:"id"`
	Points        int64  `json:"points"`         // 实际变动
	NominalPoints int64  `json:"nominal_points"` // 请求变动，余额不足时与 points 不同
	Balance       int64  `json:"balance"`        // 变动后的余额快照
	Reason        string `json:"reason"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	OrderType     string `json:"order_type"` // INCOME / EXPENSE
	CreatedAt     string `json:"created_at"`
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`
	NextCursor uint64        `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

type ListPointRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=income expense"`
	Cursor uint64 `form:"cursor"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// PointsBalance 我的积分概览
type PointsBalance struct {
	Points    int64       `json:"points"`
	Level     LevelBrief  `json:"level"`
	NextLevel *LevelBrief `json:"next_level,omitempty"`
	ToNext    int64       `json:"to_next,omitempty"` // 距下一等级所需积分
}

// AwardResult 单个会员积分变动结果
type AwardResult struct {
	MemberID     uint64     `json:"member_id"`
	Balance      int64      `json:"balance"`
	Applied      int64      `json:"applied"`
	Level        LevelBrief `json:"level"`
	LevelChanged bool       `json:"level_changed"`
}

type AdminAwardReq struct {
	MemberID      uint64 `json:"member_id" binding:"required"`
	Points        int64  `json:"points" binding:"required,min=-1000000000,max=1000000000"`
	Reason        string `json:"reason" binding:"required,max=255"`
	ReferenceType string `json:"reference_type"`
	ReferenceID   string `json:"reference_id"`
}

type AdminBatchAwardReq struct {
	MemberIDs []uint64 `json:"member_ids" binding:"required,min=1,max=1000"`
	Points    int64    `json:"points" binding:"required,min=-1000000000,max=1000000000"`
	Reason    string   `json:"reason" binding:"required,max=255"`
}

type BatchFailure struct {
	MemberID uint64 `json:"member_id"`
	Error    string `json:"error"`
}

type BatchAwardResp struct {
	Succeeded []uint64       `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// BalanceCheck 余额与流水合计对账
type BalanceCheck struct {
	MemberID   uint64 `json:"member_id"`
	Cached     int64  `json:"cached"`
	LedgerSum  int64  `json:"ledger_sum"`
	Consistent bool   `json:"consistent"`
}
