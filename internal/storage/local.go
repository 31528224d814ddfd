package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/musistash/mfs/internal/model"
	"github.com/redis/go-redis/v9"
)

const (
	// investmentKeyPrefix 投资缓存键前缀: ledger:investments:{investor_id}
	investmentKeyPrefix = "ledger:investments:"
)

// LocalStore 本地缓存存储
// 每个投资人一个键，值为JSON序列化的投资记录数组
// 每次变更整读整写，多写入方并发时存在丢失更新的已知竞态
type LocalStore struct {
	client *redis.Client
}

// NewLocalStore 创建本地缓存存储
func NewLocalStore(client *redis.Client) *LocalStore {
	return &LocalStore{client: client}
}

// investmentKey 投资缓存键
func (s *LocalStore) investmentKey(investorID string) string {
	return investmentKeyPrefix + investorID
}

// List 获取投资人的全部缓存投资记录
func (s *LocalStore) List(ctx context.Context, investorID string) ([]model.Investment, error) {
	data, err := s.client.Get(ctx, s.investmentKey(investorID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取投资缓存失败: %w", err)
	}

	var investments []model.Investment
	if err := json.Unmarshal([]byte(data), &investments); err != nil {
		return nil, fmt.Errorf("解析投资缓存失败: %w", err)
	}
	return investments, nil
}

// write 整体写回投资人的缓存数组
func (s *LocalStore) write(ctx context.Context, investorID string, investments []model.Investment) error {
	data, err := json.Marshal(investments)
	if err != nil {
		return fmt.Errorf("序列化投资缓存失败: %w", err)
	}
	if err := s.client.Set(ctx, s.investmentKey(investorID), data, 0).Err(); err != nil {
		return fmt.Errorf("写入投资缓存失败: %w", err)
	}
	return nil
}

// Upsert 写入或替换一条投资记录（按ID去重）
func (s *LocalStore) Upsert(ctx context.Context, inv *model.Investment) error {
	investments, err := s.List(ctx, inv.InvestorID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range investments {
		if investments[i].ID == inv.ID {
			investments[i] = *inv
			replaced = true
			break
		}
	}
	if !replaced {
		investments = append(investments, *inv)
	}

	return s.write(ctx, inv.InvestorID, investments)
}

// Remove 移除一条投资记录
func (s *LocalStore) Remove(ctx context.Context, investorID, investmentID string) error {
	investments, err := s.List(ctx, investorID)
	if err != nil {
		return err
	}

	filtered := investments[:0]
	for _, inv := range investments {
		if inv.ID != investmentID {
			filtered = append(filtered, inv)
		}
	}

	return s.write(ctx, investorID, filtered)
}

// Get 获取投资人的某条投资记录，不存在时返回nil
func (s *LocalStore) Get(ctx context.Context, investorID, investmentID string) (*model.Investment, error) {
	investments, err := s.List(ctx, investorID)
	if err != nil {
		return nil, err
	}
	for i := range investments {
		if investments[i].ID == investmentID {
			return &investments[i], nil
		}
	}
	return nil, nil
}

// Find 在全部缓存键中按ID查找投资记录
func (s *LocalStore) Find(ctx context.Context, investmentID string) (*model.Investment, error) {
	all, err := s.scanAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == investmentID {
			return &all[i], nil
		}
	}
	return nil, nil
}

// ListByProject 获取某项目的全部缓存投资记录
func (s *LocalStore) ListByProject(ctx context.Context, projectID string) ([]model.Investment, error) {
	all, err := s.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []model.Investment
	for _, inv := range all {
		if inv.ProjectID == projectID {
			result = append(result, inv)
		}
	}
	return result, nil
}

// ListLocalOnly 获取所有仅存在于本地的记录（远程故障期间的降级写入）
func (s *LocalStore) ListLocalOnly(ctx context.Context) ([]model.Investment, error) {
	all, err := s.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	var result []model.Investment
	for _, inv := range all {
		if inv.IsLocal() {
			result = append(result, inv)
		}
	}
	return result, nil
}

// scanAll 遍历全部投资缓存键
func (s *LocalStore) scanAll(ctx context.Context) ([]model.Investment, error) {
	var all []model.Investment

	iter := s.client.Scan(ctx, 0, investmentKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("读取投资缓存失败: %w", err)
		}

		var investments []model.Investment
		if err := json.Unmarshal([]byte(data), &investments); err != nil {
			return nil, fmt.Errorf("解析投资缓存失败: %w", err)
		}
		all = append(all, investments...)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("遍历投资缓存失败: %w", err)
	}

	return all, nil
}
