package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactInfoIsEmpty(t *testing.T) {
	assert.True(t, ContactInfo{}.IsEmpty())
	assert.False(t, ContactInfo{Email: "a@b.com"}.IsEmpty())
}

func TestAddAchievement_MaintainsDescription(t *testing.T) {
	var entry ExperienceEntry

	entry.AddAchievement("• First")
	entry.AddAchievement("• Second")

	assert.Equal(t, []string{"• First", "• Second"}, entry.Achievements)
	assert.Equal(t, "• First\n• Second", entry.Description)
}

func TestCleanBullet(t *testing.T) {
	assert.Equal(t, "Did a thing", CleanBullet("• Did a thing"))
	assert.Equal(t, "Did a thing", CleanBullet("- Did a thing"))
	assert.Equal(t, "Did a thing", CleanBullet("* Did a thing "))
	assert.Equal(t, "Did a thing", CleanBullet("Did a thing"))
}
