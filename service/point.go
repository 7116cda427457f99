package service

import (
	"Nexus/config"
	"Nexus/internal/reputation"
	"Nexus/models"
	"Nexus/types"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sourcegraph/conc/pool"
)

var ledgerEntriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "points_ledger_entries_total",
		Help: "Points ledger entries written",
	},
	[]string{"direction", "clamped"},
)

func init() {
	prometheus.MustRegister(ledgerEntriesTotal)
}

// Entry 一次积分变动请求
type Entry struct {
	MemberID      uint64
	Delta         int64
	Reason        string
	ReferenceType string
	ReferenceID   string
}

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	// AppendEntry 追加一条流水并返回变动后余额
	AppendEntry(ctx context.Context, memberID uint64, delta int64, reason string) (int64, error)
	Append(ctx context.Context, in Entry) (*models.PointsLog, error)
	// AppendEntries 逐个会员独立写入，失败的以 PartialBatchFailure 返回，成功的不回滚
	AppendEntries(ctx context.Context, memberIDs []uint64, delta int64, reason string) ([]uint64, error)
	ListPointRecords(ctx context.Context, memberID uint64, action string, cursor uint64, limit int) (*types.ListPointsRecord, error)
	VerifyBalance(ctx context.Context, memberID uint64) (*types.BalanceCheck, error)
}

type PointService struct {
	Config  *config.Config
	Ledger  LedgerStore
	Members MemberStore
}

func (p *PointService) AppendEntry(ctx context.Context, memberID uint64, delta int64, reason string) (int64, error) {
	entry, err := p.Append(ctx, Entry{MemberID: memberID, Delta: delta, Reason: reason})
	if err != nil {
		return 0, err
	}
	return entry.Balance, nil
}

func (p *PointService) Append(ctx context.Context, in Entry) (*models.PointsLog, error) {
	if in.MemberID == 0 {
		return nil, &reputation.ValidationError{Field: "member_id", Reason: "must be set"}
	}
	if err := reputation.ValidateEntry(in.Delta, in.Reason); err != nil {
		return nil, err
	}

	entry := &models.PointsLog{
		MemberID:      in.MemberID,
		NominalPoints: in.Delta,
		Reason:        strings.TrimSpace(in.Reason),
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
	}
	if err := p.Ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	direction := "income"
	if in.Delta < 0 {
		direction = "expense"
	}
	ledgerEntriesTotal.WithLabelValues(direction, strconv.FormatBool(entry.Clamped())).Inc()
	return entry, nil
}

func (p *PointService) AppendEntries(ctx context.Context, memberIDs []uint64, delta int64, reason string) ([]uint64, error) {
	if err := reputation.ValidateEntry(delta, reason); err != nil {
		return nil, err
	}
	return runBatch(memberIDs, p.Config.Member.BatchConcurrency, func(id uint64) error {
		_, err := p.Append(ctx, Entry{MemberID: id, Delta: delta, Reason: reason})
		return err
	})
}

// runBatch 对去重后的会员逐个执行 fn，并发度受限
func runBatch(memberIDs []uint64, concurrency int, fn func(id uint64) error) ([]uint64, error) {
	ids := uniqueIDs(memberIDs)
	if len(ids) == 0 {
		return nil, &reputation.ValidationError{Field: "member_ids", Reason: "empty"}
	}

	var (
		mu        sync.Mutex
		succeeded []uint64
		failures  []reputation.MemberFailure
	)
	wp := pool.New().WithMaxGoroutines(concurrency)
	for _, id := range ids {
		wp.Go(func() {
			err := fn(id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, reputation.MemberFailure{MemberID: id, Err: err})
				return
			}
			succeeded = append(succeeded, id)
		})
	}
	wp.Wait()

	sort.Slice(succeeded, func(i, j int) bool { return succeeded[i] < succeeded[j] })
	if len(failures) > 0 {
		sort.Slice(failures, func(i, j int) bool { return failures[i].MemberID < failures[j].MemberID })
		return succeeded, &reputation.PartialBatchFailure{Failures: failures}
	}
	return succeeded, nil
}

func (p *PointService) ListPointRecords(ctx context.Context, memberID uint64, action string, cursor uint64, limit int) (*types.ListPointsRecord, error) {
	logs, err := p.Ledger.ListRecords(ctx, memberID, action, cursor, limit+1)
	if err != nil {
		return nil, fmt.Errorf("list points records: %w", err)
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0, len(logs)),
	}
	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = logs[len(logs)-1].ID
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Points < 0 || l.NominalPoints < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.PointRecord{
			ID:            l.ID,
			Points:        l.Points,
			NominalPoints: l.NominalPoints,
			Balance:       l.Balance,
			Reason:        l.Reason,
			ReferenceType: l.ReferenceType,
			ReferenceID:   l.ReferenceID,
			OrderType:     orderType,
			CreatedAt:     l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

func (p *PointService) VerifyBalance(ctx context.Context, memberID uint64) (*types.BalanceCheck, error) {
	member, err := p.Members.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	sum, err := p.Ledger.SumPoints(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("sum points log: %w", err)
	}
	return &types.BalanceCheck{
		MemberID:   memberID,
		Cached:     member.Points,
		LedgerSum:  sum,
		Consistent: sum == member.Points,
	}, nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// IsNotFound 统一判断会员不存在
func IsNotFound(err error) bool {
	return errors.Is(err, reputation.ErrNotFound)
}
