package losses

import (
	"context"
	"errors"
	"testing"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/de-tools/war-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Load(ctx context.Context, name string, path string) (int64, error) {
	args := m.Called(ctx, name, path)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) Read(ctx context.Context, name string) (*store.LossTable, error) {
	args := m.Called(ctx, name)
	if t := args.Get(0); t != nil {
		return t.(*store.LossTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Normalized(t *testing.T) {
	ctx := context.Background()
	st := &mockStore{}
	st.On("Read", ctx, "personnel").Return(&store.LossTable{
		Columns: []store.LossColumn{
			{Name: "date", DataType: "DATE"},
			{Name: "day", DataType: "BIGINT"},
			{Name: "personnel", DataType: "BIGINT"},
			{Name: "personnel*", DataType: "VARCHAR"},
		},
		Rows: [][]interface{}{
			{"2022-02-25", int64(2), int64(2800), "about"},
			{"2022-02-26", int64(3), int64(4300), "about"},
			{"2022-02-27", int64(4), int64(4500), "about"},
		},
	}, nil)

	table, err := NewService(st).Normalized(ctx, domain.LossKindPersonnel)
	require.NoError(t, err)

	personnel, ok := table.Column("personnel")
	require.True(t, ok)
	assert.Equal(t, []float64{2800, 1500, 200}, personnel.Values)

	d, _ := table.Column("day")
	assert.Equal(t, []float64{2, 3, 4}, d.Values)

	st.AssertExpectations(t)
}

func TestService_Errors(t *testing.T) {
	ctx := context.Background()
	st := &mockStore{}
	svc := NewService(st)

	_, err := svc.Normalized(ctx, "aircraft")
	assert.ErrorIs(t, err, ErrUnknownKind)

	err = svc.Load(ctx, "aircraft", "/tmp/a.csv")
	assert.ErrorIs(t, err, ErrUnknownKind)

	st.On("Load", ctx, "equipment", "/missing.csv").Return(int64(0), errors.New("file not found"))
	err = svc.Load(ctx, domain.LossKindEquipment, "/missing.csv")
	assert.ErrorContains(t, err, "file not found")

	st.On("Read", ctx, "equipment").Return(nil, errors.New("table missing"))
	_, err = svc.Normalized(ctx, domain.LossKindEquipment)
	assert.ErrorContains(t, err, "table missing")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("equipment")
	require.NoError(t, err)
	assert.Equal(t, domain.LossKindEquipment, k)

	_, err = ParseKind("vehicles")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
