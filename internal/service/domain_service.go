package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
	"github.com/jy02739244/Domain-AutoCheck/internal/renewal"
	"github.com/jy02739244/Domain-AutoCheck/internal/repository"
)

// DomainService 域名與分類的 CRUD、續費、統計
type DomainService struct {
	Repo     repository.DomainRepository
	Notifier *NotifierService

	now func() time.Time
}

func NewDomainService(repo repository.DomainRepository, notify *NotifierService) *DomainService {
	return &DomainService{Repo: repo, Notifier: notify, now: time.Now}
}

// RenewRequest 未給 NewExpiry 時依週期從原到期日推算
type RenewRequest struct {
	Cycle     *domain.RenewCycle
	NewExpiry *time.Time
}

// =============================================================================
// Domains
// =============================================================================

// List 附帶剩餘天數、進度與狀態
func (s *DomainService) List(ctx context.Context) ([]domain.DomainView, error) {
	records, err := s.Repo.ListDomains(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.DomainView, 0, len(records))
	for _, d := range records {
		left := renewal.DaysLeft(d.ExpiryDate, now)
		views = append(views, domain.DomainView{
			DomainRecord: d,
			DaysLeft:     left,
			Progress:     renewal.Progress(d, left, now),
			Status:       renewal.Status(left),
		})
	}
	return views, nil
}

func (s *DomainService) Get(ctx context.Context, id string) (*domain.DomainRecord, error) {
	return s.Repo.GetDomain(ctx, id)
}

// Create 補齊預設值；未指定週期時才從日期推測
func (s *DomainService) Create(ctx context.Context, rec domain.DomainRecord) (domain.DomainRecord, error) {
	rec.Name = strings.ToLower(strings.TrimSpace(rec.Name))

	existing, err := s.Repo.FindDomainByName(ctx, rec.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return rec, err
	}
	if existing != nil {
		return rec, fmt.Errorf("%w: %s", domain.ErrDuplicateDomain, rec.Name)
	}

	now := s.now()
	rec.ID = uuid.NewString()
	if rec.CategoryID == "" {
		rec.CategoryID = domain.DefaultCategoryID
	}
	if rec.NotifySettings == nil {
		ns := domain.DefaultNotifySettings()
		rec.NotifySettings = &ns
	}
	if rec.RenewCycle == nil && !rec.RegistrationDate.IsZero() {
		c := renewal.InferCycle(rec.RegistrationDate, rec.ExpiryDate)
		rec.RenewCycle = &c
	}
	rec.CreatedAt, rec.UpdatedAt = now, now

	if err := s.Repo.PutDomain(ctx, rec); err != nil {
		return rec, err
	}
	logrus.Infof("➕ [Domain] 新增域名 %s", rec.Name)
	return rec, nil
}

// Update 以現有資料為底，覆寫可編輯欄位
func (s *DomainService) Update(ctx context.Context, id string, in domain.DomainRecord) (domain.DomainRecord, error) {
	cur, err := s.Repo.GetDomain(ctx, id)
	if err != nil {
		return domain.DomainRecord{}, err
	}
	rec := *cur

	rec.Name = strings.ToLower(strings.TrimSpace(in.Name))
	rec.RegistrationDate = in.RegistrationDate
	rec.ExpiryDate = in.ExpiryDate
	rec.Registrar = in.Registrar
	rec.RegisteredAccount = in.RegisteredAccount
	rec.CustomNote = in.CustomNote
	rec.NoteColor = in.NoteColor
	rec.RenewLink = in.RenewLink
	rec.Price = in.Price
	if in.CategoryID != "" {
		rec.CategoryID = in.CategoryID
	}
	if in.RenewCycle != nil {
		rec.RenewCycle = in.RenewCycle
	}
	if in.NotifySettings != nil {
		rec.NotifySettings = in.NotifySettings
	}
	rec.UpdatedAt = s.now()

	if err := s.Repo.PutDomain(ctx, rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *DomainService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteDomain(ctx, id); err != nil {
		return err
	}
	logrus.Infof("🗑️ [Domain] 刪除域名 %s", id)
	return nil
}

// Renew 續費：已過期者記錄從過期狀態續費的時間點
func (s *DomainService) Renew(ctx context.Context, id string, req RenewRequest) (domain.DomainRecord, error) {
	cur, err := s.Repo.GetDomain(ctx, id)
	if err != nil {
		return domain.DomainRecord{}, err
	}
	rec := *cur
	now := s.now()

	period := domain.RenewCycle{Value: 1, Unit: domain.UnitYear}
	if req.Cycle != nil {
		period = *req.Cycle
	} else if rec.RenewCycle != nil {
		period = *rec.RenewCycle
	}
	if period.Value <= 0 {
		period.Value = 1
	}
	if period.Unit == "" {
		period.Unit = domain.UnitYear
	}

	if rec.RenewCycle == nil {
		c := period
		rec.RenewCycle = &c
	}
	if rec.ExpiryDate.Before(now) {
		rec.RenewedFromExpired = true
		rec.RenewStartDate = &now
	}

	newExpiry := renewal.NextExpiry(rec.ExpiryDate, period)
	if req.NewExpiry != nil {
		newExpiry = *req.NewExpiry
	}

	rec.ExpiryDate = newExpiry
	rec.LastRenewed = &now
	rec.LastRenewPeriod = &period
	rec.UpdatedAt = now

	if err := s.Repo.PutDomain(ctx, rec); err != nil {
		return rec, err
	}
	logrus.Infof("🔄 [Domain] %s 已續費至 %s", rec.Name, rec.ExpiryDate.Format(domain.DateLayout))
	return rec, nil
}

// Stats 儀表板統計
func (s *DomainService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats := domain.DashboardStats{
		CategoryCounts: make(map[string]int),
		ExpiryCounts:   make(map[string]int),
	}
	views, err := s.List(ctx)
	if err != nil {
		return stats, err
	}

	for _, v := range views {
		stats.TotalDomains++
		stats.CategoryCounts[v.CategoryID]++
		if !v.Notify().Enabled {
			stats.MutedCount++
		}

		switch v.Status {
		case domain.StatusExpired:
			stats.ExpiredCount++
		case domain.StatusWarning:
			stats.WarningCount++
		default:
			stats.ActiveCount++
		}

		// 到期區間 (互斥)
		switch {
		case v.DaysLeft <= 0:
		case v.DaysLeft <= 7:
			stats.ExpiryCounts["<7"]++
		case v.DaysLeft <= 30:
			stats.ExpiryCounts["<30"]++
		case v.DaysLeft <= 90:
			stats.ExpiryCounts["<90"]++
		default:
			stats.ExpiryCounts[">90"]++
		}
	}
	return stats, nil
}

// TestNotify 以單一域名預覽提醒格式
func (s *DomainService) TestNotify(ctx context.Context, id string) (DispatchResult, error) {
	rec, err := s.Repo.GetDomain(ctx, id)
	if err != nil {
		return DispatchResult{}, err
	}
	stored, err := s.Repo.GetTelegramConfig(ctx)
	if err != nil {
		return DispatchResult{}, err
	}

	cfg := s.Notifier.Credentials(stored)
	if !cfg.Enabled {
		return failedDispatch(domain.ErrTelegramOff), nil
	}
	message, err := FormatDomainTest(*rec, s.now())
	if err != nil {
		return DispatchResult{}, err
	}
	return s.Notifier.SendResolved(ctx, cfg, message), nil
}

// =============================================================================
// Categories
// =============================================================================

// ListCategories 預設分類永遠在第一位
func (s *DomainService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	stored, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]domain.Category{domain.DefaultCategory()}, sortedCategories(stored)...), nil
}

func (s *DomainService) CreateCategory(ctx context.Context, name, description string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	stored, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	if nameTaken(stored, name, "") {
		return domain.Category{}, domain.ErrDuplicateCategory
	}

	order := 1
	for _, c := range stored {
		if c.Order >= order {
			order = c.Order + 1
		}
	}

	now := s.now()
	c := domain.Category{
		ID:          ulid.Make().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.PutCategory(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

func (s *DomainService) UpdateCategory(ctx context.Context, id, name, description string) (domain.Category, error) {
	if id == domain.DefaultCategoryID {
		return domain.Category{}, domain.ErrDefaultCategory
	}
	cur, err := s.Repo.GetCategory(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	stored, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return domain.Category{}, err
	}

	name = strings.TrimSpace(name)
	if nameTaken(stored, name, id) {
		return domain.Category{}, domain.ErrDuplicateCategory
	}

	c := *cur
	c.Name = name
	c.Description = strings.TrimSpace(description)
	c.UpdatedAt = s.now()
	if err := s.Repo.PutCategory(ctx, c); err != nil {
		return c, err
	}
	return c, nil
}

// DeleteCategory 該分類的域名移回預設分類
func (s *DomainService) DeleteCategory(ctx context.Context, id string) error {
	if id == domain.DefaultCategoryID {
		return domain.ErrDefaultCategory
	}
	if _, err := s.Repo.GetCategory(ctx, id); err != nil {
		return err
	}

	moved, err := s.Repo.ReassignCategory(ctx, id, domain.DefaultCategoryID)
	if err != nil {
		return err
	}
	if moved > 0 {
		logrus.Infof("📦 [Category] %d 個域名移回預設分類", moved)
	}
	return s.Repo.DeleteCategory(ctx, id)
}

// MoveCategory 與相鄰分類交換順序，已在邊界時不動
func (s *DomainService) MoveCategory(ctx context.Context, id string, up bool) error {
	if id == domain.DefaultCategoryID {
		return domain.ErrDefaultCategory
	}
	stored, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return err
	}
	list := sortedCategories(stored)

	idx := -1
	for i, c := range list {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}

	target := idx + 1
	if up {
		target = idx - 1
	}
	if target < 0 || target >= len(list) {
		return nil
	}

	a, b := list[idx], list[target]
	a.Order, b.Order = b.Order, a.Order
	if a.Order == b.Order {
		// 舊資料可能 order 重複，依目前位置重編
		a.Order, b.Order = target+1, idx+1
	}
	if err := s.Repo.PutCategory(ctx, a); err != nil {
		return err
	}
	return s.Repo.PutCategory(ctx, b)
}

func sortedCategories(stored []domain.Category) []domain.Category {
	out := make([]domain.Category, 0, len(stored))
	for _, c := range stored {
		if c.ID == domain.DefaultCategoryID {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func nameTaken(stored []domain.Category, name, exceptID string) bool {
	if strings.EqualFold(name, domain.DefaultCategory().Name) {
		return true
	}
	for _, c := range stored {
		if c.ID != exceptID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
