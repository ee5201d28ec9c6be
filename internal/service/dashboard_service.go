package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
)

const (
	dashboardWeaknessLimit = 5
	dashboardRecentLimit   = 10
)

type DashboardService struct {
	AttemptRepo *repository.AttemptRepository
}

func NewDashboardService(attemptRepo *repository.AttemptRepository) *DashboardService {
	return &DashboardService{AttemptRepo: attemptRepo}
}

// GetDashboard 一次取齐面板数据：总览、弱点 Top5、最近提交
func (s *DashboardService) GetDashboard(userID uint) (*model.DashboardStats, error) {
	attempts, err := s.AttemptRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	topics, patterns := ComputeStats(attempts)
	weaknesses := RankWeaknesses(topics, patterns)
	if len(weaknesses) > dashboardWeaknessLimit {
		weaknesses = weaknesses[:dashboardWeaknessLimit]
	}

	recent, err := s.AttemptRepo.ListRecentByUser(userID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		Summary:        Summarize(attempts),
		TopWeaknesses:  weaknesses,
		RecentAttempts: recent,
	}, nil
}
