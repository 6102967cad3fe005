package session

import (
	"errors"
	"fmt"
	"sync"

	"pdfquiz/internal/service/quiz"
)

// State tracks where a session's quiz is in its lifecycle:
// NoQuiz -> Generated -> Submitted -> (reset) -> NoQuiz.
type State string

const (
	StateNoQuiz    State = "no_quiz"
	StateGenerated State = "generated"
	StateSubmitted State = "submitted"
)

var (
	ErrNoQuiz           = errors.New("no quiz has been generated")
	ErrAlreadySubmitted = errors.New("quiz already submitted")
	ErrIncomplete       = errors.New("please answer all questions before submitting")
)

// Summary holds a generated document summary.
type Summary struct {
	Text      string   `json:"summary"`
	WordCount int      `json:"word_count"`
	KeyTopics []string `json:"key_topics"`
}

// Session owns everything tied to one uploaded document: the extracted
// text, its summary, the current quiz, the collected answers and the
// score. All methods are safe for concurrent use.
type Session struct {
	ID        string
	Filename  string
	PageCount int
	WordCount int
	Truncated bool

	mu      sync.Mutex
	text    string
	state   State
	summary *Summary
	quiz    []quiz.Question
	answers quiz.AnswerMap
	report  *quiz.ScoreReport
}

// Text returns the extracted (possibly truncated) document text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetSummary(sum *Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = sum
}

func (s *Session) Summary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// SetQuiz installs a freshly generated quiz and moves the session to
// Generated, discarding any previous answers and score.
func (s *Session) SetQuiz(questions []quiz.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = questions
	s.answers = quiz.AnswerMap{}
	s.report = nil
	s.state = StateGenerated
}

// Quiz returns the current question list. Callers must treat it as
// read-only; the scorer references it in place.
func (s *Session) Quiz() []quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// SetAnswer records the user's answer for one question. Rejected once
// the quiz has been submitted.
func (s *Session) SetAnswer(index int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateNoQuiz:
		return ErrNoQuiz
	case StateSubmitted:
		return ErrAlreadySubmitted
	}
	if index < 0 || index >= len(s.quiz) {
		return fmt.Errorf("question index %d out of range", index)
	}
	s.answers[index] = answer
	return nil
}

// Submit validates that every question has an answer, scores the quiz
// and moves the session to Submitted. The completeness check lives
// here, not in the scorer, which tolerates gaps.
func (s *Session) Submit() (*quiz.ScoreReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateNoQuiz:
		return nil, ErrNoQuiz
	case StateSubmitted:
		return nil, ErrAlreadySubmitted
	}
	answered := 0
	for i := range s.quiz {
		if _, ok := s.answers[i]; ok {
			answered++
		}
	}
	if answered < len(s.quiz) {
		return nil, fmt.Errorf("%w (%d of %d answered)", ErrIncomplete, answered, len(s.quiz))
	}
	s.report = quiz.Score(s.quiz, s.answers)
	s.state = StateSubmitted
	return s.report, nil
}

// Report returns the score from the last submission, nil before one.
func (s *Session) Report() *quiz.ScoreReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// ResetQuiz discards the quiz, answers and score so a new quiz can be
// generated from the same document.
func (s *Session) ResetQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = nil
	s.answers = nil
	s.report = nil
	s.state = StateNoQuiz
}
