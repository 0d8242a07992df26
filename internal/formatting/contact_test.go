package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_TypicalHeader(t *testing.T) {
	text := `John Doe
john@x.com | (555) 123-4567

Experience
Acme Corp`

	info := ExtractContactInfo(text)

	assert.Equal(t, "John Doe", info.Name)
	assert.Equal(t, "john@x.com", info.Email)
	assert.Contains(t, info.Phone, "555")
	assert.Contains(t, info.Phone, "123-4567")
}

func TestExtractContactInfo_SingleLinePopulatesMultipleFields(t *testing.T) {
	text := "jane@corp.io 555-867-5309 linkedin.com/in/jane-r LinkedIn"
	info := ExtractContactInfo(text)

	assert.Equal(t, "jane@corp.io", info.Email)
	assert.NotEmpty(t, info.Phone)
	assert.Equal(t, "linkedin.com/in/jane-r", info.LinkedIn)
	// Line contains "@" so it cannot be the name.
	assert.Empty(t, info.Name)
}

func TestExtractContactInfo_FirstMatchWins(t *testing.T) {
	text := "first@one.com\nsecond@two.com"
	info := ExtractContactInfo(text)
	assert.Equal(t, "first@one.com", info.Email)
}

func TestExtractContactInfo_GitHub(t *testing.T) {
	info := ExtractContactInfo("GitHub: github.com/octocat")
	assert.Equal(t, "github.com/octocat", info.GitHub)
}

func TestExtractContactInfo_LinkedInRequiresProfilePath(t *testing.T) {
	// Mentions linkedin without a /in/ handle: no match.
	info := ExtractContactInfo("Find me on LinkedIn")
	assert.Empty(t, info.LinkedIn)
}

func TestExtractContactInfo_NameRejectsLongLines(t *testing.T) {
	info := ExtractContactInfo("Senior Software Engineer With Many Years Experience\nJohn Doe")
	assert.Equal(t, "John Doe", info.Name)
}

func TestExtractContactInfo_OnlyFirstTenLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("filler@line.com filler\n")
	}
	sb.WriteString("Late Name\nlate@mail.com 999 111 2222")

	info := ExtractContactInfo(sb.String())

	assert.Equal(t, "filler@line.com", info.Email)
	// Lines past the tenth never contribute, even when richer.
	assert.Empty(t, info.Name)
}

func TestExtractContactInfo_PhoneFormats(t *testing.T) {
	for _, phone := range []string{
		"(555) 123-4567",
		"555-123-4567",
		"555.123.4567",
		"+1 555 123 4567",
	} {
		t.Run(phone, func(t *testing.T) {
			info := ExtractContactInfo("Contact\n" + phone)
			assert.NotEmpty(t, info.Phone)
		})
	}
}

func TestExtractContactInfo_EmptyInput(t *testing.T) {
	info := ExtractContactInfo("")
	assert.Equal(t, ContactInfo{}, info)
}

func TestExtractContactInfo_LocationNeverPopulated(t *testing.T) {
	info := ExtractContactInfo("John Doe\nSan Francisco, CA")
	assert.Empty(t, info.Location)
}
