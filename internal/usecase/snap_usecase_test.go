package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/discovery-microservice/internal/domain"
	"github.com/discovery-microservice/internal/usecase"
)

type snapCall struct {
	size int
}

// fakeRoadsRepo отвечает на каждую пачку по заранее заданному сценарию
type fakeRoadsRepo struct {
	calls     []snapCall
	failCall  int // номер вызова, который вернёт ошибку (с 1), 0 - без ошибок
	statusFor map[int]int
}

func (f *fakeRoadsRepo) SnapBatch(
	_ context.Context, points []domain.Coordinate,
) ([]domain.Coordinate, int, error) {
	f.calls = append(f.calls, snapCall{size: len(points)})
	call := len(f.calls)

	if f.failCall == call {
		return nil, 0, errors.New("roads api unreachable")
	}
	if status, ok := f.statusFor[call]; ok {
		return nil, status, nil
	}
	return points, http.StatusOK, nil
}

func makeTrack(n int) []domain.Coordinate {
	track := make([]domain.Coordinate, n)
	for i := range track {
		track[i] = domain.Coordinate{Lat: 41.39 + float64(i)*0.0001, Lon: 2.17}
	}
	return track
}

func TestSnapToRoads_SplitsIntoBatches(t *testing.T) {
	// Arrange
	roads := &fakeRoadsRepo{}
	uc := usecase.NewSnapUseCase(roads, 100, zap.NewNop())
	track := makeTrack(250)

	// Act
	snapped := uc.SnapToRoads(context.Background(), track)

	// Assert
	require.Len(t, roads.calls, 3)
	assert.Equal(t, 100, roads.calls[0].size)
	assert.Equal(t, 100, roads.calls[1].size)
	assert.Equal(t, 50, roads.calls[2].size)
	assert.Len(t, snapped, 250)
}

func TestSnapToRoads_FailedBatchSkipped(t *testing.T) {
	roads := &fakeRoadsRepo{failCall: 2}
	uc := usecase.NewSnapUseCase(roads, 100, zap.NewNop())
	track := makeTrack(250)

	snapped := uc.SnapToRoads(context.Background(), track)

	// Вторая пачка выпала, первая и третья на месте в исходном порядке
	require.Len(t, roads.calls, 3)
	assert.Len(t, snapped, 150)
	assert.Equal(t, track[0], snapped[0])
	assert.Equal(t, track[200], snapped[100])
}

func TestSnapToRoads_NonSuccessStatusSkipped(t *testing.T) {
	roads := &fakeRoadsRepo{statusFor: map[int]int{1: http.StatusTooManyRequests}}
	uc := usecase.NewSnapUseCase(roads, 100, zap.NewNop())
	track := makeTrack(120)

	snapped := uc.SnapToRoads(context.Background(), track)

	require.Len(t, roads.calls, 2)
	assert.Len(t, snapped, 20)
}

func TestSnapToRoads_EmptyTrack(t *testing.T) {
	roads := &fakeRoadsRepo{}
	uc := usecase.NewSnapUseCase(roads, 100, zap.NewNop())

	snapped := uc.SnapToRoads(context.Background(), nil)

	assert.Empty(t, snapped)
	assert.Empty(t, roads.calls)
}

func TestSnapToRoads_SingleSmallBatch(t *testing.T) {
	roads := &fakeRoadsRepo{}
	uc := usecase.NewSnapUseCase(roads, 100, zap.NewNop())
	track := makeTrack(7)

	snapped := uc.SnapToRoads(context.Background(), track)

	require.Len(t, roads.calls, 1)
	assert.Equal(t, track, snapped)
}
