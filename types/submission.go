package types

type SubmitReq struct {
	ContentType string `json:"content_type" binding:"required,oneof=article question answer"`
	ContentID   string `json:"content_id" binding:"required,max=64"`
}

type ReviewReq struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note" binding:"max=255"`
}

type ListSubmissionsReq struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Page   int    `form:"page,default=1" binding:"min=1"`
	Size   int    `form:"size,default=20" binding:"min=1,max=100"`
}
