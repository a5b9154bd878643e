package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureFlagsSet(t *testing.T) {
	var f FeatureFlags

	assert.NoError(t, f.Set("voiceCommands", true))
	assert.NoError(t, f.Set("confidentialityMode", true))
	assert.True(t, f.VoiceCommands)
	assert.True(t, f.ConfidentialityMode)
	assert.False(t, f.AutoAssignment)

	assert.NoError(t, f.Set("voiceCommands", false))
	assert.False(t, f.VoiceCommands)

	err := f.Set("darkMode", true)
	assert.EqualError(t, err, "unknown feature: darkMode")
	assert.Equal(t, FeatureFlags{ConfidentialityMode: true}, f)
}

func TestResumeStatusValid(t *testing.T) {
	for _, s := range ResumeStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ResumeStatus("archived").Valid())
	assert.False(t, ResumeStatus("").Valid())
}

func TestSystemSettingsPatchApply(t *testing.T) {
	current := SystemSettings{
		Features:  FeatureFlags{EmailNotifications: true},
		APIConfig: APIConfig{ResumeParser: "active", Sendgrid: "inactive"},
	}

	got := SystemSettingsPatch{}.Apply(current)
	assert.Equal(t, current, got)

	got = SystemSettingsPatch{Features: &FeatureFlags{VoiceCommands: true}}.Apply(current)
	assert.Equal(t, FeatureFlags{VoiceCommands: true}, got.Features)
	assert.Equal(t, current.APIConfig, got.APIConfig)

	got = SystemSettingsPatch{APIConfig: &APIConfig{Pusher: "active"}}.Apply(current)
	assert.Equal(t, current.Features, got.Features)
	assert.Equal(t, APIConfig{Pusher: "active"}, got.APIConfig)
}

func TestJobFiltersIsEmpty(t *testing.T) {
	assert.True(t, JobFilters{}.IsEmpty())
	assert.False(t, JobFilters{City: "Mumbai"}.IsEmpty())
	assert.False(t, JobFilters{SearchTerm: "chef"}.IsEmpty())
}

func TestDefaultDashboardWidgetsUseKnownTypes(t *testing.T) {
	for _, w := range DefaultDashboardWidgets() {
		assert.Contains(t, WidgetTypes, w.Type)
	}
}
