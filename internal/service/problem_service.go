package service

import (
	"codecoach_backend/internal/model"
	"codecoach_backend/internal/repository"
	"codecoach_backend/internal/util"
	"fmt"

	"gorm.io/gorm"
)

const defaultProblemListLimit = 50

type ProblemService struct {
	ProblemRepo *repository.ProblemRepository
}

func NewProblemService(problemRepo *repository.ProblemRepository) *ProblemService {
	return &ProblemService{ProblemRepo: problemRepo}
}

func (s *ProblemService) CreateProblem(problem *model.Problem) error {
	if problem.ProblemID == "" || problem.Title == "" || problem.Topic == "" {
		return fmt.Errorf("%w: problem_id, title and topic are required", util.ErrInvalidArgument)
	}
	if !problem.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidArgument, problem.Difficulty)
	}

	_, err := s.ProblemRepo.FindByProblemID(problem.ProblemID)
	if err == nil {
		return fmt.Errorf("%w: problem %s already exists", util.ErrInvalidArgument, problem.ProblemID)
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return s.ProblemRepo.Create(problem)
}

func (s *ProblemService) ListProblems(topic string, difficulty model.Difficulty, limit int) ([]model.Problem, error) {
	if difficulty != "" && !difficulty.Valid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidArgument, difficulty)
	}
	if limit <= 0 {
		limit = defaultProblemListLimit
	}
	return s.ProblemRepo.List(topic, difficulty, limit)
}
