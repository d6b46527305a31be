package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mondalsurojit/swipe-assignment/internal/models"
	"github.com/mondalsurojit/swipe-assignment/internal/repositories"
)

const terminatedSummary = "Interview terminated early."

// InterviewEngine drives one candidate through the interview lifecycle:
// session start, answer intake and evaluation, difficulty advancement,
// completion or forced termination, and projection into the candidate
// directory. All mutating operations are serialized per session.
type InterviewEngine struct {
	sessions  repositories.SessionRepository
	directory *CandidateDirectory
	questions *QuestionGenerator
	evaluator *AnswerEvaluator
	summaries *SummaryGenerator

	questionCount int
	logger        *zap.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewInterviewEngine(
	sessions repositories.SessionRepository,
	directory *CandidateDirectory,
	questions *QuestionGenerator,
	evaluator *AnswerEvaluator,
	summaries *SummaryGenerator,
	questionCount int,
	logger *zap.Logger,
) *InterviewEngine {
	if questionCount <= 0 {
		questionCount = 6
	}

	return &InterviewEngine{
		sessions:      sessions,
		directory:     directory,
		questions:     questions,
		evaluator:     evaluator,
		summaries:     summaries,
		questionCount: questionCount,
		logger:        logger,
		locks:         make(map[string]*sync.Mutex),
	}
}

// sessionLock returns the mutex serializing mutations for one session.
// Without it two concurrent submits could double-advance the question
// counter or project two candidate records.
func (e *InterviewEngine) sessionLock(sessionID string) *sync.Mutex {
	e.locksMu.Lock()
	defer e.locksMu.Unlock()

	lock, ok := e.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		e.locks[sessionID] = lock
	}
	return lock
}

// StartSession creates a session with its first question at easy difficulty.
// No session is discoverable unless the whole operation succeeds.
func (e *InterviewEngine) StartSession(ctx context.Context, candidateID string, userInfo models.UserInfo) (*models.StartInterviewResponse, error) {
	sessionID := uuid.NewString()

	firstQuestion := e.questions.Generate(ctx, models.DifficultyEasy, 1)

	session := &models.Session{
		SessionID:         sessionID,
		CandidateID:       candidateID,
		UserInfo:          userInfo,
		CurrentQuestion:   1,
		CurrentDifficulty: models.DifficultyEasy,
		Questions:         []models.Question{firstQuestion},
		Status:            models.StatusActive,
		StartTime:         time.Now(),
	}

	if err := e.sessions.Put(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	e.logger.Info("interview session started",
		zap.String("sessionId", sessionID),
		zap.String("candidateId", candidateID))

	return &models.StartInterviewResponse{
		SessionID:      sessionID,
		Question:       firstQuestion.Question,
		QuestionNumber: 1,
		TimeLimit:      models.DifficultyEasy.TimeLimit(),
	}, nil
}

// SubmitAnswer records the answer for the pending question, evaluates it,
// and either advances to the next question or completes the session on the
// final one. Completion projects exactly one candidate record.
func (e *InterviewEngine) SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.SubmitAnswerResponse, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := e.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted {
		return nil, models.ErrInterviewCompleted
	}

	pending := session.Questions[session.CurrentQuestion-1]
	evaluation := e.evaluator.Evaluate(ctx, pending, answer)

	session.Answers = append(session.Answers, answer)
	session.Scores = append(session.Scores, evaluation.Score)
	session.Evaluations = append(session.Evaluations, evaluation)

	if session.CurrentQuestion >= e.questionCount {
		return e.complete(ctx, session, evaluation)
	}

	session.CurrentQuestion++
	session.CurrentDifficulty = models.DifficultyForQuestion(session.CurrentQuestion)

	nextQuestion := e.questions.Generate(ctx, session.CurrentDifficulty, session.CurrentQuestion)
	session.Questions = append(session.Questions, nextQuestion)

	if err := e.sessions.Put(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &models.SubmitAnswerResponse{
		Completed:      false,
		Question:       nextQuestion.Question,
		QuestionNumber: session.CurrentQuestion,
		TimeLimit:      session.CurrentDifficulty.TimeLimit(),
		Evaluation:     evaluation,
	}, nil
}

func (e *InterviewEngine) complete(ctx context.Context, session *models.Session, evaluation models.Evaluation) (*models.SubmitAnswerResponse, error) {
	now := time.Now()
	session.FinalScore = meanScore(session.Scores)
	session.Summary = e.summaries.Generate(ctx, session.Questions, session.Answers, session.Scores)
	session.Status = models.StatusCompleted
	session.Terminated = false
	session.EndTime = &now

	if err := e.sessions.Put(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if err := e.directory.Add(ctx, candidateFromSession(session, now)); err != nil {
		e.logger.Error("failed to project candidate record",
			zap.String("sessionId", session.SessionID),
			zap.Error(err))
	}

	e.logger.Info("interview completed",
		zap.String("sessionId", session.SessionID),
		zap.Float64("finalScore", session.FinalScore))

	finalScore := session.FinalScore
	return &models.SubmitAnswerResponse{
		Completed:  true,
		Evaluation: evaluation,
		FinalScore: &finalScore,
		Summary:    session.Summary,
	}, nil
}

// TerminateInterview force-ends a session at any point. It must succeed even
// when summary generation fails, so generation problems degrade to a fixed
// summary text instead of an error.
func (e *InterviewEngine) TerminateInterview(ctx context.Context, sessionID string) (*models.TerminateInterviewResponse, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := e.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == models.StatusCompleted {
		return nil, models.ErrInterviewCompleted
	}

	now := time.Now()
	session.Status = models.StatusCompleted
	session.Terminated = true
	session.EndTime = &now
	session.FinalScore = meanScore(session.Scores)

	session.Summary = terminatedSummary
	if len(session.Answers) > 0 && len(session.Questions) > 0 {
		answered := session.Questions[:len(session.Answers)]
		if summary := e.summaries.Generate(ctx, answered, session.Answers, session.Scores); summary != "" {
			session.Summary = summary
		}
	}

	if err := e.sessions.Put(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	if err := e.directory.Add(ctx, candidateFromSession(session, now)); err != nil {
		e.logger.Error("failed to project candidate record",
			zap.String("sessionId", session.SessionID),
			zap.Error(err))
	}

	e.logger.Info("interview terminated",
		zap.String("sessionId", sessionID),
		zap.Int("answered", len(session.Answers)))

	return &models.TerminateInterviewResponse{
		Terminated: true,
		FinalScore: session.FinalScore,
		Summary:    session.Summary,
	}, nil
}

// UpdateUserInfo merges the provided non-empty fields into the session's
// user info. Whether an incomplete profile blocks the interview is the
// caller's concern; the engine only reports completeness.
func (e *InterviewEngine) UpdateUserInfo(ctx context.Context, sessionID string, userInfo models.UserInfo) (*models.UpdateUserInfoResponse, error) {
	lock := e.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := e.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(userInfo.Name) != "" {
		session.UserInfo.Name = userInfo.Name
	}
	if strings.TrimSpace(userInfo.Email) != "" {
		session.UserInfo.Email = userInfo.Email
	}
	if strings.TrimSpace(userInfo.Phone) != "" {
		session.UserInfo.Phone = userInfo.Phone
	}

	if err := e.sessions.Put(session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &models.UpdateUserInfoResponse{
		Success:  true,
		UserInfo: session.UserInfo,
		Complete: session.UserInfo.Complete(),
	}, nil
}

// GetSession returns the full session record.
func (e *InterviewEngine) GetSession(sessionID string) (*models.Session, error) {
	return e.sessions.FindByID(sessionID)
}

func candidateFromSession(session *models.Session, completedAt time.Time) models.Candidate {
	return models.Candidate{
		SessionID:   session.SessionID,
		Name:        session.UserInfo.Name,
		Email:       session.UserInfo.Email,
		Phone:       session.UserInfo.Phone,
		FinalScore:  session.FinalScore,
		Summary:     session.Summary,
		Questions:   append([]models.Question(nil), session.Questions...),
		Answers:     append([]string(nil), session.Answers...),
		Scores:      append([]int(nil), session.Scores...),
		Evaluations: append([]models.Evaluation(nil), session.Evaluations...),
		CompletedAt: completedAt,
		Terminated:  session.Terminated,
	}
}

func meanScore(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}

	total := 0
	for _, score := range scores {
		total += score
	}
	return float64(total) / float64(len(scores))
}
