package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/types"
	"context"
	"encoding/json"
	"fmt"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/tidwall/gjson"
)

const (
	ActionView     = "view"
	ActionWatch    = "watch"
	ActionDownload = "download"
)

var _ IModuleService = (*ModuleService)(nil)

type IModuleService interface {
	Setting(ctx context.Context, module string) (*models.ModuleSetting, error)
	// Requirement 模块动作对应的访问要求，由 custom_settings 决定
	Requirement(ctx context.Context, module, action string) (reputation.Requirement, error)
	CanUse(ctx context.Context, member *models.Member, module, action string) (*types.ModuleAccessResp, error)
	Save(ctx context.Context, adminID uint64, module string, req *types.SaveModuleReq) error
}

type cachedSetting struct {
	setting  *models.ModuleSetting
	loadedAt time.Time
}

type ModuleService struct {
	config   *config.Config
	store    ModuleStore
	audit    AdminLogStore
	settings cmap.ConcurrentMap[string, cachedSetting]
}

func NewModuleService(conf *config.Config, store ModuleStore, audit AdminLogStore) *ModuleService {
	return &ModuleService{
		config:   conf,
		store:    store,
		audit:    audit,
		settings: cmap.New[cachedSetting](),
	}
}

func (s *ModuleService) Setting(ctx context.Context, module string) (*models.ModuleSetting, error) {
	if c, ok := s.settings.Get(module); ok && time.Since(c.loadedAt) < s.config.Member.ModuleCacheTTL {
		return c.setting, nil
	}
	setting, err := s.store.Find(ctx, module)
	if err != nil {
		return nil, fmt.Errorf("load module %s: %w", module, err)
	}
	if setting == nil {
		// 未配置的模块默认开启且不限制
		setting = &models.ModuleSetting{Module: module, Enabled: true}
	}
	s.settings.Set(module, cachedSetting{setting: setting, loadedAt: time.Now()})
	return setting, nil
}

func (s *ModuleService) Requirement(ctx context.Context, module, action string) (reputation.Requirement, error) {
	setting, err := s.Setting(ctx, module)
	if err != nil {
		return reputation.Requirement{}, err
	}
	custom := []byte(setting.CustomSettings)

	switch action {
	case ActionView:
		return reputation.Public(), nil
	case ActionWatch:
		return reputation.VideoPlayback(gjson.GetBytes(custom, "require_login_to_watch").Bool()), nil
	case ActionDownload:
		if gjson.GetBytes(custom, "require_login_to_download").Bool() {
			return reputation.Authenticated(), nil
		}
		return reputation.Public(), nil
	default:
		return reputation.Requirement{}, &reputation.ValidationError{Field: "action", Reason: "unknown action " + action}
	}
}

func (s *ModuleService) CanUse(ctx context.Context, member *models.Member, module, action string) (*types.ModuleAccessResp, error) {
	resp := &types.ModuleAccessResp{Module: module, Action: action}

	setting, err := s.Setting(ctx, module)
	if err != nil {
		return nil, err
	}
	if !setting.Enabled {
		resp.Reason = ErrModuleOff.Error()
		return resp, nil
	}
	if member != nil && !member.IsActive() {
		resp.Reason = ErrInactive.Error()
		return resp, nil
	}

	req, err := s.Requirement(ctx, module, action)
	if err != nil {
		return nil, err
	}
	resp.Allowed, err = reputation.Allow(member, req)
	if err != nil {
		return nil, err
	}
	if !resp.Allowed {
		resp.Reason = ErrLoginRequired.Error()
	}
	return resp, nil
}

func (s *ModuleService) Save(ctx context.Context, adminID uint64, module string, req *types.SaveModuleReq) error {
	switch module {
	case models.ModuleArticles, models.ModuleProducts, models.ModuleQuestions, models.ModuleDownloads, models.ModuleVideos:
	default:
		return &reputation.ValidationError{Field: "module", Reason: "unknown module " + module}
	}
	custom, err := json.Marshal(req.CustomSettings)
	if err != nil {
		return &reputation.ValidationError{Field: "custom_settings", Reason: err.Error()}
	}

	setting := &models.ModuleSetting{
		Module:         module,
		Enabled:        req.Enabled,
		CustomSettings: custom,
	}
	if err := s.store.Save(ctx, setting); err != nil {
		return fmt.Errorf("save module %s: %w", module, err)
	}
	s.settings.Remove(module)
	writeAudit(ctx, s.audit, adminID, "update_module", "module", module, req)
	return nil
}
