package repository

//go:generate mockgen -source=domain_repo.go -destination=mocks/mock_domain_repo.go -package=mocks DomainRepository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jy02739244/Domain-AutoCheck/internal/domain"
)

const (
	domainsCollection    = "domains"
	categoriesCollection = "categories"
	settingsCollection   = "settings"
	telegramSettingsID   = "telegram"
)

// DomainRepository 整筆讀寫的儲存介面 (domains / categories / settings)
// 不做鎖，同一筆資料併發修改以最後寫入為準
type DomainRepository interface {
	ListDomains(ctx context.Context) ([]domain.DomainRecord, error)
	GetDomain(ctx context.Context, id string) (*domain.DomainRecord, error)
	FindDomainByName(ctx context.Context, name string) (*domain.DomainRecord, error)
	PutDomain(ctx context.Context, rec domain.DomainRecord) error
	DeleteDomain(ctx context.Context, id string) error
	// [新增] 刪除分類時把域名移回預設分類
	ReassignCategory(ctx context.Context, fromID, toID string) (int64, error)

	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	PutCategory(ctx context.Context, c domain.Category) error
	DeleteCategory(ctx context.Context, id string) error

	GetTelegramConfig(ctx context.Context) (domain.TelegramConfig, error)
	SaveTelegramConfig(ctx context.Context, cfg domain.TelegramConfig) error
}

type mongoDomainRepo struct {
	collection *mongo.Collection
	categories *mongo.Collection
	settings   *mongo.Collection
}

func NewMongoDomainRepo(db *mongo.Database) DomainRepository {
	return &mongoDomainRepo{
		collection: db.Collection(domainsCollection),
		categories: db.Collection(categoriesCollection),
		settings:   db.Collection(settingsCollection),
	}
}

// =============================================================================
// Domains
// =============================================================================

func (r *mongoDomainRepo) ListDomains(ctx context.Context) ([]domain.DomainRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "expiry_date", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []domain.DomainRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *mongoDomainRepo) GetDomain(ctx context.Context, id string) (*domain.DomainRecord, error) {
	return findOne[domain.DomainRecord](ctx, r.collection, bson.M{"_id": id})
}

func (r *mongoDomainRepo) FindDomainByName(ctx context.Context, name string) (*domain.DomainRecord, error) {
	return findOne[domain.DomainRecord](ctx, r.collection, bson.M{"name": name})
}

func (r *mongoDomainRepo) PutDomain(ctx context.Context, rec domain.DomainRecord) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": rec.ID}, rec, opts)
	return err
}

func (r *mongoDomainRepo) DeleteDomain(ctx context.Context, id string) error {
	return deleteOne(ctx, r.collection, id)
}

func (r *mongoDomainRepo) ReassignCategory(ctx context.Context, fromID, toID string) (int64, error) {
	res, err := r.collection.UpdateMany(ctx,
		bson.M{"category_id": fromID},
		bson.M{"$set": bson.M{"category_id": toID}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// =============================================================================
// Categories
// =============================================================================

func (r *mongoDomainRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []domain.Category{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *mongoDomainRepo) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return findOne[domain.Category](ctx, r.categories, bson.M{"_id": id})
}

func (r *mongoDomainRepo) PutCategory(ctx context.Context, c domain.Category) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.categories.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts)
	return err
}

func (r *mongoDomainRepo) DeleteCategory(ctx context.Context, id string) error {
	return deleteOne(ctx, r.categories, id)
}

// =============================================================================
// Settings (單一文件)
// =============================================================================

func (r *mongoDomainRepo) GetTelegramConfig(ctx context.Context) (domain.TelegramConfig, error) {
	var cfg domain.TelegramConfig
	err := r.settings.FindOne(ctx, bson.M{"_id": telegramSettingsID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.TelegramConfig{NotifyDays: domain.DefaultNotifyDays}, nil // 回傳預設設定
	}
	return cfg, err
}

func (r *mongoDomainRepo) SaveTelegramConfig(ctx context.Context, cfg domain.TelegramConfig) error {
	// 使用 Upsert，確保只有一筆設定
	opts := options.Update().SetUpsert(true)
	_, err := r.settings.UpdateOne(ctx, bson.M{"_id": telegramSettingsID}, bson.M{"$set": cfg}, opts)
	return err
}

// =============================================================================
// Helpers
// =============================================================================

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func deleteOne(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
