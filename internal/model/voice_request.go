package model

import "slices"

// SupportedLanguages is the fixed, case-sensitive set of clip languages.
var SupportedLanguages = []string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"}

// IsSupportedLanguage reports whether lang is in SupportedLanguages.
func IsSupportedLanguage(lang string) bool {
	return slices.Contains(SupportedLanguages, lang)
}

// VoiceRequestBody is the JSON body of a detection request. Fields are
// pointers so a missing field can be told apart from an empty one.
type VoiceRequestBody struct {
	Language    *string `json:"language" validate:"required"`
	AudioFormat *string `json:"audioFormat" validate:"required"`
	AudioBase64 *string `json:"audioBase64" validate:"required"`
}

// Request returns the validated body as a VoiceRequest. Call it only after
// the body passed validation.
func (b VoiceRequestBody) Request() VoiceRequest {
	return VoiceRequest{
		Language:    deref(b.Language),
		AudioFormat: deref(b.AudioFormat),
		AudioBase64: deref(b.AudioBase64),
	}
}

// VoiceRequest is one detection request.
type VoiceRequest struct {
	Language    string
	AudioFormat string
	AudioBase64 string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
