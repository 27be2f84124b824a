package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WinterJet2021/May-Win-NSP-Project/internal/config"
	"github.com/WinterJet2021/May-Win-NSP-Project/pkg/core/instance"
)

func TestLoadInstance_ReadsDirectoryInputs(t *testing.T) {
	dir := t.TempDir()

	orig, err := instance.Synthetic(instance.Horizon{Staff: 3, ShiftTypes: 2, Days: 4})
	require.NoError(t, err)
	require.NoError(t, orig.Dump(dir))

	app := &AppContext{Logger: zap.NewNop()}
	inst, err := loadInstance(app, dir)
	require.NoError(t, err)

	assert.Equal(t, orig.Horizon, inst.Horizon)
	assert.Equal(t, orig.Coverage, inst.Coverage)
}

func TestLoadInstance_FallsBackToSynthetic(t *testing.T) {
	app := &AppContext{Logger: zap.NewNop()}

	inst, err := loadInstance(app, "")
	require.NoError(t, err)

	assert.Equal(t, instance.ToyHorizon, inst.Horizon)
}

func TestTimeLimit_ConvertsSeconds(t *testing.T) {
	assert.Equal(t, 45*time.Second, timeLimit(&config.Config{TimeLimitSeconds: 45}))
	assert.Equal(t, time.Duration(0), timeLimit(&config.Config{}))
}
