package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Member: &config.Member{
			BatchConcurrency: 4,
			HashIDSalt:       "test-salt",
			LevelCacheTTL:    time.Minute,
			ModuleCacheTTL:   time.Minute,
			LeaderboardLimit: 10,
		},
	}
}

func ptr(v int64) *int64 { return &v }

func defaultLevels() []models.MemberLevel {
	return []models.MemberLevel{
		{ID: 1, Name: "bronze", MinPoints: 0, MaxPoints: ptr(99), BadgeColor: "#cd7f32"},
		{ID: 2, Name: "silver", MinPoints: 100, MaxPoints: ptr(499), BadgeColor: "#c0c0c0"},
		{ID: 3, Name: "gold", MinPoints: 500, BadgeColor: "#ffd700"},
	}
}

// memDB 同时充当会员、积分流水、关注关系存储
type memDB struct {
	mu         sync.Mutex
	members    map[uint64]*models.Member
	logs       []models.PointsLog
	follows    map[[2]uint64]int
	failAppend map[uint64]error
	nextLogID  uint64
}

func newMemDB(members ...models.Member) *memDB {
	db := &memDB{
		members:    make(map[uint64]*models.Member),
		follows:    make(map[[2]uint64]int),
		failAppend: make(map[uint64]error),
	}
	for _, m := range members {
		if m.Status == "" {
			m.Status = models.StatusActive
		}
		if m.ProfileVisibility == "" {
			m.ProfileVisibility = models.VisibilityPublic
		}
		if m.Role == "" {
			m.Role = models.RoleMember
		}
		db.members[m.ID] = &m
	}
	return db
}

func (d *memDB) FindByID(_ context.Context, id uint64) (*models.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.members[id]
	if !ok {
		return nil, reputation.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (d *memDB) UpdateFields(_ context.Context, id uint64, fields map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	m, ok := d.members[id]
	if !ok {
		return reputation.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "nickname":
			m.Nickname = v.(string)
		case "profile_visibility":
			m.ProfileVisibility = v.(models.Visibility)
		case "status":
			m.Status = v.(models.MemberStatus)
		case "member_level":
			m.MemberLevel = v.(models.MemberTier)
		case "level":
			m.Level = v.(uint)
		case "email_verified":
			m.EmailVerified = v.(bool)
		}
	}
	return nil
}

func (d *memDB) UpdateLevel(ctx context.Context, id uint64, level uint) error {
	return d.UpdateFields(ctx, id, map[string]any{"level": level})
}

func (d *memDB) SetLevelBatch(_ context.Context, ids []uint64, level uint) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var n int64
	for _, id := range ids {
		if m, ok := d.members[id]; ok {
			m.Level = level
			n++
		}
	}
	return n, nil
}

func (d *memDB) TopByPoints(_ context.Context, limit int) ([]models.Member, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Member, 0, len(d.members))
	for _, m := range d.members {
		if m.Status == models.StatusActive {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (d *memDB) Append(_ context.Context, entry *models.PointsLog) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.failAppend[entry.MemberID]; err != nil {
		return err
	}
	m, ok := d.members[entry.MemberID]
	if !ok {
		return reputation.ErrNotFound
	}
	d.nextLogID++
	entry.ID = d.nextLogID
	entry.Points = reputation.ClampDelta(m.Points, entry.NominalPoints)
	entry.Balance = m.Points + entry.Points
	entry.CreatedAt = time.Now()
	m.Points = entry.Balance
	d.logs = append(d.logs, *entry)
	return nil
}

func (d *memDB) ListRecords(_ context.Context, memberID uint64, action string, cursor uint64, limit int) ([]models.PointsLog, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []models.PointsLog
	for i := len(d.logs) - 1; i >= 0 && len(out) < limit; i-- {
		l := d.logs[i]
		if l.MemberID != memberID || (cursor > 0 && l.ID >= cursor) {
			continue
		}
		if (action == "income" && l.Points <= 0) || (action == "expense" && l.Points >= 0) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (d *memDB) SumPoints(_ context.Context, memberID uint64) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var sum int64
	for _, l := range d.logs {
		if l.MemberID == memberID {
			sum += l.Points
		}
	}
	return sum, nil
}

func (d *memDB) entries(memberID uint64) []models.PointsLog {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []models.PointsLog
	for _, l := range d.logs {
		if l.MemberID == memberID {
			out = append(out, l)
		}
	}
	return out
}

func (d *memDB) IsFollowing(_ context.Context, followerID, followingID uint64) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.follows[[2]uint64{followerID, followingID}] == models.FollowStatusActive, nil
}

func (d *memDB) IsMutual(ctx context.Context, a, b uint64) (bool, error) {
	ab, _ := d.IsFollowing(ctx, a, b)
	ba, _ := d.IsFollowing(ctx, b, a)
	return ab && ba, nil
}

func (d *memDB) SetStatus(_ context.Context, followerID, followingID uint64, status int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.follows[[2]uint64{followerID, followingID}] = status
	return nil
}

func (d *memDB) GetFollowerCount(_ context.Context, memberID uint64) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var n int64
	for k, v := range d.follows {
		if k[1] == memberID && v == models.FollowStatusActive {
			n++
		}
	}
	return n, nil
}

func (d *memDB) GetFollowingCount(_ context.Context, memberID uint64) (int64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var n int64
	for k, v := range d.follows {
		if k[0] == memberID && v == models.FollowStatusActive {
			n++
		}
	}
	return n, nil
}

type memLevels struct {
	mu     sync.Mutex
	levels []models.MemberLevel
	writes int
}

func (l *memLevels) List(context.Context) ([]models.MemberLevel, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.MemberLevel(nil), l.levels...), nil
}

func (l *memLevels) Save(_ context.Context, level *models.MemberLevel) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes++
	for i := range l.levels {
		if l.levels[i].ID == level.ID {
			l.levels[i] = *level
			return nil
		}
	}
	l.levels = append(l.levels, *level)
	return nil
}

func (l *memLevels) ReplaceAll(_ context.Context, levels []models.MemberLevel) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes++
	l.levels = append([]models.MemberLevel(nil), levels...)
	return nil
}

func (l *memLevels) Remove(_ context.Context, id uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writes++
	for i := range l.levels {
		if l.levels[i].ID == id {
			l.levels = append(l.levels[:i], l.levels[i+1:]...)
			break
		}
	}
	return nil
}

type memCache struct {
	mu          sync.Mutex
	levels      []models.MemberLevel
	invalidated int
}

func (c *memCache) Get(context.Context) ([]models.MemberLevel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.MemberLevel(nil), c.levels...), nil
}

func (c *memCache) Set(_ context.Context, levels []models.MemberLevel, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels = append([]models.MemberLevel(nil), levels...)
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.levels = nil
	c.invalidated++
	return nil
}

type memRules struct {
	rules map[string]models.PointsRule
}

func (r *memRules) List(context.Context) ([]models.PointsRule, error) {
	out := make([]models.PointsRule, 0, len(r.rules))
	for _, rule := range r.rules {
		out = append(out, rule)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out, nil
}

func (r *memRules) FindByAction(_ context.Context, action string) (*models.PointsRule, error) {
	rule, ok := r.rules[action]
	if !ok {
		return nil, nil
	}
	return &rule, nil
}

func (r *memRules) Upsert(_ context.Context, rule *models.PointsRule) error {
	r.rules[rule.Action] = *rule
	return nil
}

type memSubmissions struct {
	items  map[uint64]*models.MemberSubmission
	nextID uint64
}

func (s *memSubmissions) Create(_ context.Context, item *models.MemberSubmission) error {
	s.nextID++
	item.ID = s.nextID
	item.SubmittedAt = time.Now()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *memSubmissions) FindByID(_ context.Context, id uint64) (*models.MemberSubmission, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *memSubmissions) ListByMember(_ context.Context, memberID uint64) ([]models.MemberSubmission, error) {
	var out []models.MemberSubmission
	for _, item := range s.items {
		if item.MemberID == memberID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memSubmissions) ListByStatus(_ context.Context, status models.SubmissionStatus, limit, offset int) ([]models.MemberSubmission, error) {
	var out []models.MemberSubmission
	for _, item := range s.items {
		if status == "" || item.Status == status {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memSubmissions) Review(_ context.Context, id uint64, status models.SubmissionStatus, reviewerID uint64, note string) (bool, error) {
	item, ok := s.items[id]
	if !ok || item.Status != models.SubmissionPending {
		return false, nil
	}
	item.Status = status
	item.ReviewerID = &reviewerID
	item.ReviewNote = note
	return true, nil
}

func (s *memSubmissions) Reopen(_ context.Context, id uint64, from models.SubmissionStatus) (bool, error) {
	item, ok := s.items[id]
	if !ok || item.Status != from {
		return false, nil
	}
	item.Status = models.SubmissionPending
	item.ReviewerID = nil
	item.ReviewNote = ""
	return true, nil
}

type memModules struct {
	settings map[string]models.ModuleSetting
	reads    int
}

func (m *memModules) Find(_ context.Context, module string) (*models.ModuleSetting, error) {
	m.reads++
	s, ok := m.settings[module]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memModules) Save(_ context.Context, setting *models.ModuleSetting) error {
	m.settings[setting.Module] = *setting
	return nil
}

type memAdminLogs struct {
	mu   sync.Mutex
	logs []models.AdminOperationLog
}

func (a *memAdminLogs) Write(_ context.Context, log *models.AdminOperationLog) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logs = append(a.logs, *log)
	return nil
}

func (a *memAdminLogs) Recent(_ context.Context, limit int) ([]models.AdminOperationLog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := append([]models.AdminOperationLog(nil), a.logs...)
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

// harness 组装真实服务 + 内存存储
type harness struct {
	db         *memDB
	levels     *memLevels
	cache      *memCache
	rules      *memRules
	audit      *memAdminLogs
	level      *LevelService
	points     *PointService
	reputation *ReputationService
	follow     *FollowService
	visibility *VisibilityService
}

func newHarness(members ...models.Member) *harness {
	conf := testConfig()
	h := &harness{
		db:     newMemDB(members...),
		levels: &memLevels{levels: defaultLevels()},
		cache:  &memCache{},
		rules:  &memRules{rules: map[string]models.PointsRule{}},
		audit:  &memAdminLogs{},
	}
	h.level = &LevelService{Config: conf, Store: h.levels, Cache: h.cache}
	h.points = &PointService{Config: conf, Ledger: h.db, Members: h.db}
	h.reputation = &ReputationService{Config: conf, Points: h.points, Levels: h.level, Members: h.db}
	h.follow = &FollowService{Follows: h.db, Members: h.db}
	h.visibility = &VisibilityService{Members: h.db, Follows: h.db}
	return h
}
