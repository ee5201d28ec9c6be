package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"codecoach_backend/pkg/monitoring"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// revisionIntervals 间隔复习表（天）。条目到达表尾后停在 60 天，不再增长。
var revisionIntervals = [...]int{1, 3, 7, 14, 30, 60}

type RevisionService struct {
	RevisionRepo *repository.RevisionRepository
	ProblemRepo  *repository.ProblemRepository
}

func NewRevisionService(revisionRepo *repository.RevisionRepository, problemRepo *repository.ProblemRepository) *RevisionService {
	return &RevisionService{
		RevisionRepo: revisionRepo,
		ProblemRepo:  problemRepo,
	}
}

// Admit 把一道已解决的题放进复习队列。幂等：条目已存在时不会重复创建，
// 而是当作一次成功的复习处理。
func (s *RevisionService) Admit(userID uint, problemID string, completedAt time.Time) (*model.RevisionEntry, error) {
	existing, err := s.RevisionRepo.Find(userID, problemID)
	if err == nil {
		return s.advance(existing, completedAt, true)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	entry := &model.RevisionEntry{
		UserID:          userID,
		ProblemID:       problemID,
		IntervalIndex:   0,
		NextDueAt:       completedAt.AddDate(0, 0, revisionIntervals[0]),
		LastCompletedAt: completedAt,
	}
	if err := s.RevisionRepo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Complete 处理一次复习结果。成功时间隔指针前进一格（封顶在表尾），
// 失败时重置回表头从最短间隔重新巩固。
func (s *RevisionService) Complete(userID uint, problemID string, completedAt time.Time, solved bool) (*model.RevisionEntry, error) {
	entry, err := s.RevisionRepo.Find(userID, problemID)
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("%w: no revision entry for problem %s", util.ErrNotFound, problemID)
	}
	if err != nil {
		return nil, err
	}
	return s.advance(entry, completedAt, solved)
}

func (s *RevisionService) advance(entry *model.RevisionEntry, completedAt time.Time, solved bool) (*model.RevisionEntry, error) {
	if solved {
		if entry.IntervalIndex < len(revisionIntervals)-1 {
			entry.IntervalIndex++
		}
	} else {
		entry.IntervalIndex = 0
	}

	entry.NextDueAt = completedAt.AddDate(0, 0, revisionIntervals[entry.IntervalIndex])
	entry.LastCompletedAt = completedAt

	if err := s.RevisionRepo.Update(entry); err != nil {
		return nil, err
	}

	outcome := "solved"
	if !solved {
		outcome = "failed"
	}
	monitoring.RevisionsCompleted.WithLabelValues(outcome).Inc()

	return entry, nil
}

// Due 到期复习列表加计数统计，最逾期的在前
func (s *RevisionService) Due(userID uint, asOf time.Time, limit int) ([]model.RevisionEntry, *model.RevisionStats, error) {
	entries, err := s.RevisionRepo.ListDue(userID, asOf, limit)
	if err != nil {
		return nil, nil, err
	}

	if len(entries) > 0 {
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ProblemID)
		}
		problems, err := s.ProblemRepo.FindByProblemIDs(ids)
		if err != nil {
			return nil, nil, err
		}
		for i := range entries {
			if p, ok := problems[entries[i].ProblemID]; ok {
				entries[i].ProblemTitle = p.Title
				entries[i].ProblemTopic = p.Topic
			}
		}
	}

	stats, err := s.RevisionRepo.Stats(userID, asOf)
	if err != nil {
		return nil, nil, err
	}
	return entries, stats, nil
}
