package court

import (
	"encoding/json"
	"testing"

	"courtbook/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourtBody_MidnightOpeningAccepted(t *testing.T) {
	var body createCourtBody
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"Court 1","openingHour":"00:00","closingHour":"23:00"}`), &body))

	v := validator.New()
	v.SetTagName("binding")
	assert.NoError(t, v.Struct(body))

	req := body.toRequest()
	assert.Equal(t, domain.TimeOfDay(0), req.OpeningHour)
	assert.Equal(t, mustTime(t, "23:00"), req.ClosingHour)
}

func TestUpdateCourtBody_MissingHourRejected(t *testing.T) {
	var body updateCourtBody
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"Court 1","status":"available","closingHour":"22:00"}`), &body))

	v := validator.New()
	v.SetTagName("binding")
	assert.Error(t, v.Struct(body))
}
