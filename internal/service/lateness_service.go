package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/viann980/Jadwal-Integrasi-ai/internal/repository"
)

// DefaultLateThreshold 迟到概率告警阈值（严格大于）
const DefaultLateThreshold = 0.7

// Prediction 迟到预测结果；Warning 为 nil 表示不告警
type Prediction struct {
	Probability float64
	Warning     *string
}

// LatenessService 教师迟到预测接口
//
// 只是频率估计：概率 = 迟到次数 / 同 (教师, 星期) 的记录数，
// 不做平滑，不设最小样本量。
type LatenessService interface {
	Predict(ctx context.Context, lecturer, day string) (Prediction, error)
}

type latenessService struct {
	repo      *repository.Repository
	threshold float64
	logger    *zap.Logger
}

// NewLatenessService 创建 LatenessService 实例
func NewLatenessService(repo *repository.Repository, threshold float64, logger *zap.Logger) LatenessService {
	return &latenessService{repo: repo, threshold: threshold, logger: logger}
}

func (s *latenessService) Predict(ctx context.Context, lecturer, day string) (Prediction, error) {
	records, err := s.repo.History.ListByLecturerDay(ctx, lecturer, day)
	if err != nil {
		s.logger.Error("查询迟到历史失败", zap.String("lecturer", lecturer), zap.Error(err))
		return Prediction{}, err
	}
	if len(records) == 0 {
		return Prediction{}, nil
	}

	late := 0
	for _, r := range records {
		if r.LateMinutes > 0 {
			late++
		}
	}
	p := Prediction{Probability: float64(late) / float64(len(records))}
	if p.Probability > s.threshold {
		text := fmt.Sprintf("Prediksi AI: Kelas ini memiliki potensi terlambat 10-15 menit berdasarkan pola %s.", lecturer)
		p.Warning = &text
	}
	return p, nil
}
