package types

type RecordHistoryReq struct {
	ContentType  string `json:"content_type" binding:"required,oneof=article product video download question"`
	ContentID    string `json:"content_id" binding:"required,max=64"`
	ContentTitle string `json:"content_title" binding:"max=255"`
}

type ListHistoryReq struct {
	ContentType string `form:"content_type"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	Size        int    `form:"size,default=20" binding:"min=1,max=100"`
}
