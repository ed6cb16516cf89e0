package council

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("success - embedded dataset parses and validates", func(t *testing.T) {
		// act
		rc, err := Load()

		// assert
		assert.NoError(t, err)
		members := rc.All()
		assert.NotEmpty(t, members)
		for _, m := range members {
			assert.NotEmpty(t, m.Name)
			assert.NotZero(t, m.District)
			assert.True(t, strings.HasSuffix(m.Email, "@dallas.gov"))
			assert.True(t, validStatuses[m.Status])
		}
	})
	t.Run("success - All returns a copy", func(t *testing.T) {
		// arrange
		rc, err := Load()
		assert.NoError(t, err)

		// act
		members := rc.All()
		members[0].Name = "overwritten"

		// assert
		assert.NotEqual(t, "overwritten", rc.All()[0].Name)
	})
}

func TestLookups(t *testing.T) {
	rc, err := Load()
	assert.NoError(t, err)

	t.Run("success - lookup by district", func(t *testing.T) {
		m, ok := rc.ByDistrict(10)
		assert.True(t, ok)
		assert.Equal(t, 10, m.District)
	})
	t.Run("failure - unknown district", func(t *testing.T) {
		_, ok := rc.ByDistrict(99)
		assert.False(t, ok)
	})
	t.Run("success - lookup by partial name is case insensitive", func(t *testing.T) {
		m, ok := rc.ByName("blackmon")
		assert.True(t, ok)
		assert.Contains(t, strings.ToLower(m.Name), "blackmon")
	})
	t.Run("failure - unknown name", func(t *testing.T) {
		_, ok := rc.ByName("nosuchmember")
		assert.False(t, ok)
	})
}

func TestEmailTemplate(t *testing.T) {
	rc, err := Load()
	assert.NoError(t, err)

	t.Run("success - template addresses the district member", func(t *testing.T) {
		// act
		tmpl, ok := rc.EmailTemplate(10, "")

		// assert
		assert.True(t, ok)
		member, _ := rc.ByDistrict(10)
		assert.Equal(t, member.Email, tmpl.Email)
		assert.Equal(t, "Urgent: Opposition to Alley Collection Changes", tmpl.Subject)
		assert.Contains(t, tmpl.Body, "Dear Council Member "+member.Name)
		assert.Contains(t, tmpl.Body, "District 10")
		assert.Contains(t, tmpl.Body, "[YOUR NAME]")
	})
	t.Run("success - custom message is appended", func(t *testing.T) {
		// act
		tmpl, ok := rc.EmailTemplate(10, "Our alley floods when carts block the drain.")

		// assert
		assert.True(t, ok)
		assert.True(t, strings.HasSuffix(
			tmpl.Body, "Our alley floods when carts block the drain.",
		))
	})
	t.Run("failure - unknown district yields no template", func(t *testing.T) {
		tmpl, ok := rc.EmailTemplate(99, "")
		assert.False(t, ok)
		assert.Nil(t, tmpl)
	})
}

func TestMailtoURL(t *testing.T) {
	rc, err := Load()
	assert.NoError(t, err)

	t.Run("success - mailto link is query escaped", func(t *testing.T) {
		// act
		link, ok := rc.MailtoURL(10, "")

		// assert
		assert.True(t, ok)
		member, _ := rc.ByDistrict(10)
		assert.True(t, strings.HasPrefix(link, "mailto:"+member.Email+"?subject="))
		assert.NotContains(t, link, " ")
		assert.Contains(t, link, "body=")
	})
}
