package model

import "testing"

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"} {
		if !IsSupportedLanguage(lang) {
			t.Errorf("%s should be supported", lang)
		}
	}
	for _, lang := range []string{"english", "ENGLISH", "French", "", " Tamil"} {
		if IsSupportedLanguage(lang) {
			t.Errorf("%q should not be supported", lang)
		}
	}
}

func TestRequestDereferences(t *testing.T) {
	lang, format := "Hindi", "mp3"
	req := VoiceRequestBody{Language: &lang, AudioFormat: &format}.Request()
	if req.Language != "Hindi" || req.AudioFormat != "mp3" || req.AudioBase64 != "" {
		t.Errorf("unexpected request: %+v", req)
	}
}
