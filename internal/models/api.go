package models

type StartInterviewRequest struct {
	CandidateID string   `json:"candidateId"`
	UserInfo    UserInfo `json:"userInfo"`
}

type StartInterviewResponse struct {
	SessionID      string `json:"sessionId"`
	Question       string `json:"question"`
	QuestionNumber int    `json:"questionNumber"`
	TimeLimit      int    `json:"timeLimit"`
}

type SubmitAnswerRequest struct {
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Completed      bool       `json:"completed"`
	Question       string     `json:"question,omitempty"`
	QuestionNumber int        `json:"questionNumber,omitempty"`
	TimeLimit      int        `json:"timeLimit,omitempty"`
	Evaluation     Evaluation `json:"evaluation"`
	FinalScore     *float64   `json:"finalScore,omitempty"`
	Summary        string     `json:"summary,omitempty"`
}

type TerminateInterviewRequest struct {
	SessionID string `json:"sessionId"`
}

type TerminateInterviewResponse struct {
	Terminated bool    `json:"terminated"`
	FinalScore float64 `json:"finalScore"`
	Summary    string  `json:"summary"`
}

type UpdateUserInfoRequest struct {
	SessionID string   `json:"sessionId"`
	UserInfo  UserInfo `json:"userInfo"`
}

type UpdateUserInfoResponse struct {
	Success  bool     `json:"success"`
	UserInfo UserInfo `json:"userInfo"`
	Complete bool     `json:"complete"`
}

type UploadResumeResponse struct {
	UserInfo      UserInfo `json:"userInfo"`
	ExtractedText string   `json:"extractedText"`
}

type ValidateReferralRequest struct {
	Code string `json:"code"`
}

type ValidateReferralResponse struct {
	Valid bool `json:"valid"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

type VerifyTokenResponse struct {
	Valid bool   `json:"valid"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
}
