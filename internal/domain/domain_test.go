package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"donor", "hospital", "blood_bank"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Role(valid), role)
	}

	for _, invalid := range []string{"", "admin", "Donor", "BLOOD_BANK"} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestParseUrgency(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High", "Critical"} {
		urgency, ok := ParseUrgency(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Urgency(valid), urgency)
	}

	_, ok := ParseUrgency("urgent")
	assert.False(t, ok)
	_, ok = ParseUrgency("")
	assert.False(t, ok)
}

func TestUrgencyIsEmergency(t *testing.T) {
	assert.False(t, UrgencyLow.IsEmergency())
	assert.False(t, UrgencyMedium.IsEmergency())
	assert.True(t, UrgencyHigh.IsEmergency())
	assert.True(t, UrgencyCritical.IsEmergency())
}

func TestParseAdjustAction(t *testing.T) {
	action, ok := ParseAdjustAction("add")
	assert.True(t, ok)
	assert.Equal(t, AdjustActionAdd, action)

	action, ok = ParseAdjustAction("remove")
	assert.True(t, ok)
	assert.Equal(t, AdjustActionRemove, action)

	_, ok = ParseAdjustAction("transfer")
	assert.False(t, ok)
}
