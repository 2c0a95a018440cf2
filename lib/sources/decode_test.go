package sources

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/eotracker/lib/model"
)

func orderIDs(col []*model.Order) []string {
	return lo.Map(col, func(o *model.Order, _ int) string { return o.ID })
}

func TestDecodeKeepsPayloadOrder(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(`[
		{"id": "b", "name": "B", "status": "Active", "signedDate": "2025-01-21", "forecastImpact": 2, "forecastStall": 0.5,
		 "lawsuits": [{"caseName": "X v. Y", "description": "Filed"}]},
		{"id": "a", "name": "A", "status": "Rescinded", "signedDate": "2025-01-20", "forecastImpact": 0, "forecastStall": 0}
	]`))
	require.Nil(t, err)

	assert.Equal(t, []string{"b", "a"}, orderIDs(result.Orders))
	assert.Empty(t, result.Rejected)
	assert.Equal(t, []model.Lawsuit{{CaseName: "X v. Y", Description: "Filed"}}, result.Orders[0].Lawsuits)
	assert.NotNil(t, result.Orders[1].Lawsuits)
}

func TestDecodeQuarantinesInvalidRecords(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(`[
		{"id": "1", "status": "Active", "forecastImpact": 1},
		{"id": "2", "status": "Pending", "forecastImpact": 1},
		{"id": "3", "status": "Active", "forecastImpact": "high"},
		{"id": "1", "status": "Rescinded", "forecastImpact": 1},
		{"id": "4", "status": "Active", "forecastImpact": 9},
		{"id": "5", "status": "Active", "forecastStall": 1.5},
		null,
		{"id": "6", "status": "Fully implemented"}
	]`))
	require.Nil(t, err)

	assert.Equal(t, []string{"1", "6"}, orderIDs(result.Orders))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, lo.Map(result.Rejected, func(r Rejection, _ int) int { return r.Index }))
	assert.Equal(t, "1", result.Rejected[2].ID)
	assert.Contains(t, result.Rejected[2].String(), "duplicated id")
}

func TestDecodeRejectsNonArrayPayload(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`{"id": "1"}`,
		`null`,
		`not json`,
		``,
		`[{"id": "1", "status": "Active"}] {"garbage"`,
		`[{"id": "1", "status": "Active"}] []`,
		`[{"id": "1", "status": "Active"}`,
	} {
		_, err := Decode(strings.NewReader(payload))
		assert.NotNil(t, err, payload)
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader(`[]`))
	require.Nil(t, err)

	assert.Empty(t, result.Orders)
	assert.Empty(t, result.Rejected)
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	result, err := Decode(strings.NewReader("[{\"id\": \"1\", \"status\": \"Active\"}]\n\n  "))
	require.Nil(t, err)

	assert.Equal(t, []string{"1"}, orderIDs(result.Orders))
}
