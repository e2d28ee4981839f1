package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/health-planner/internal/pipeline"
	"github.com/jonathan/health-planner/internal/types"
)

func resetPlanFlags() {
	planConfigPath = ""
	planReadings = ""
	planPreferences = ""
	planRules = ""
	planAPIKey = ""
	planModel = ""
	planOut = ""
	planVerbose = false
}

func TestPlanCommand_FallbackWithoutAPIKey(t *testing.T) {
	defer resetPlanFlags()
	t.Setenv("GEMINI_API_KEY", "")

	planReadings = writeTempFile(t, "readings.json", `{
		"gender": "female",
		"readings": {"fasting_glucose": 5.0, "systolic_bp": 150}
	}`)
	planOut = filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runPlanCmd(planCmd, nil))

	data, err := os.ReadFile(planOut)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(data, &result))
	assert.NotEmpty(t, result.RunID)
	require.NotNil(t, result.Plan)
	assert.Equal(t, types.PlanFallback, result.Plan.Source)
	assert.Equal(t, 1, result.Report.Overall.AbnormalCount)
	assert.NotEmpty(t, result.AllowedExercises)
	assert.NotEmpty(t, result.AllowedFoods)
}

func TestPlanCommand_PreferencesApplied(t *testing.T) {
	defer resetPlanFlags()
	t.Setenv("GEMINI_API_KEY", "")

	planReadings = writeTempFile(t, "readings.json", `{"readings": {"fasting_glucose": 5.0}}`)
	planPreferences = writeTempFile(t, "prefs.json", `{"allergens": ["peanut"]}`)
	planOut = filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runPlanCmd(planCmd, nil))

	data, err := os.ReadFile(planOut)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(data, &result))
	for _, food := range result.AllowedFoods {
		assert.NotContains(t, food.Allergens, "peanut")
	}
}

func TestPlanCommand_InvalidPreferences(t *testing.T) {
	defer resetPlanFlags()
	t.Setenv("GEMINI_API_KEY", "")

	planReadings = writeTempFile(t, "readings.json", `{"readings": {"fasting_glucose": 5.0}}`)
	planPreferences = writeTempFile(t, "prefs.json", `{"meals_per_day": 40}`)

	err := runPlanCmd(planCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preferences")
}

func TestPlanCommand_ConfigFile(t *testing.T) {
	defer resetPlanFlags()
	t.Setenv("GEMINI_API_KEY", "")

	planConfigPath = writeTempFile(t, "config.json", `{"max_retries": 1, "timeout_seconds": 30}`)
	planReadings = writeTempFile(t, "readings.json", `{"readings": {"hba1c": 5.1}}`)
	planOut = filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, runPlanCmd(planCmd, nil))

	data, err := os.ReadFile(planOut)
	require.NoError(t, err)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, types.PlanFallback, result.Plan.Source)
}

func TestPlanCommand_MissingConfigFile(t *testing.T) {
	defer resetPlanFlags()

	planConfigPath = filepath.Join(t.TempDir(), "missing.json")
	planReadings = writeTempFile(t, "readings.json", `{"readings": {"hba1c": 5.1}}`)

	err := runPlanCmd(planCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
