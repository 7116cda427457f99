package types

type FollowStats struct {
	FollowingCount int64 `json:"following_count"`
	FollowerCount  int64 `json:"follower_count"`
	IsFollowing    bool  `json:"is_following"`
	IsMutual       bool  `json:"is_mutual"`
}

type ProfileResp struct {
	ID                uint64      `json:"id"`
	Username          string      `json:"username"`
	Nickname          string      `json:"nickname"`
	AvatarURL         string      `json:"avatar_url"`
	Points            int64       `json:"points"`
	Level             LevelBrief  `json:"level"`
	MemberLevel       string      `json:"member_level"`
	ProfileVisibility string      `json:"profile_visibility"`
	ShareCode         string      `json:"share_code"`
	PersonalPage      bool        `json:"personal_page"` // 个人主页功能是否解锁
	Follow            FollowStats `json:"follow"`
}

type UpdateProfileReq struct {
	Nickname          *string `json:"nickname" binding:"omitempty,min=1,max=64"`
	ProfileVisibility *string `json:"profile_visibility" binding:"omitempty,oneof=public friends private"`
}

type EmailVerifyResp struct {
	EmailVerified bool   `json:"email_verified"`
	MemberLevel   string `json:"member_level"`
	Upgraded      bool   `json:"upgraded"`
}
