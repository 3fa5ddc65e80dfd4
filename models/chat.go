package models

// SupportedLanguage is one of the seven languages the assistant answers in.
type SupportedLanguage string

const (
	LangEnglish   SupportedLanguage = "English"
	LangHindi     SupportedLanguage = "Hindi"
	LangTamil     SupportedLanguage = "Tamil"
	LangMalayalam SupportedLanguage = "Malayalam"
	LangTelugu    SupportedLanguage = "Telugu"
	LangBengali   SupportedLanguage = "Bengali"
	LangPunjabi   SupportedLanguage = "Punjabi"
)

func Languages() []SupportedLanguage {
	return []SupportedLanguage{
		LangEnglish, LangHindi, LangTamil, LangMalayalam,
		LangTelugu, LangBengali, LangPunjabi,
	}
}

func (l SupportedLanguage) Valid() bool {
	for _, s := range Languages() {
		if l == s {
			return true
		}
	}
	return false
}

// ChatRole is the author of a conversation turn.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one prior turn of the guidance conversation. History is
// carried by the caller; the gateway keeps no state.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// GuidanceRequest is the request body for the assistant chat endpoint.
type GuidanceRequest struct {
	Message  string            `json:"message" binding:"required"`
	History  []ChatMessage     `json:"history"`
	Language SupportedLanguage `json:"language"`
}

// Classification is the structured result of image-based issue analysis.
type Classification struct {
	Category    IssueCategory `json:"category"`
	Description string        `json:"description"`
}
