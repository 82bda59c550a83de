package programme

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/adapters/driving/tui/messages"
	"github.com/ictam/agmsite/internal/core/domain"
)

// MockProgrammeService implements driving.ProgrammeService for testing.
type MockProgrammeService struct {
	programme *domain.Programme
	err       error
}

func (m *MockProgrammeService) Programme(_ context.Context) (*domain.Programme, error) {
	return m.programme, m.err
}

func (m *MockProgrammeService) Filter(_ context.Context, _ domain.ProgrammeFilter) ([]domain.ProgrammeDay, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.programme.Schedule, nil
}

func (m *MockProgrammeService) SessionTypes(_ context.Context) ([]string, error) {
	return nil, m.err
}

func testProgramme() *domain.Programme {
	return &domain.Programme{
		Event: "ICTAM AGM 2025",
		Venue: "Accra International Conference Centre",
		Schedule: []domain.ProgrammeDay{
			{
				Day:      "Tuesday, 18 November 2025",
				Subtitle: "Arrival",
				Sessions: []domain.Session{
					{Title: "Registration", Time: "08:00", Type: "Logistics"},
					{Title: "Opening Ceremony", Time: "10:00", Type: "Ceremony", Venue: "Main Hall", DressCode: "Formal"},
				},
			},
			{
				Day: "Wednesday, 19 November 2025",
				Sessions: []domain.Session{
					{Title: "Keynote: AI & Society", Time: "09:00", Type: "Keynote", Speaker: "Kwame Boateng"},
				},
			},
			{Day: "Thursday, 20 November 2025"},
		},
	}
}

func loaded(t *testing.T, svc *MockProgrammeService) *View {
	t.Helper()
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	cmd := v.Init()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_RendersFirstDay(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: testProgramme()})

	out := v.View()

	assert.Contains(t, out, "ICTAM AGM 2025")
	assert.Contains(t, out, "Tue, 18 Nov")
	assert.Contains(t, out, "Wed, 19 Nov")
	assert.Contains(t, out, "Tuesday, 18 November 2025")
	assert.Contains(t, out, "Arrival")
	assert.Contains(t, out, "> 08:00")
	assert.Contains(t, out, "[Ceremony]")
	assert.Contains(t, out, "Main Hall · Dress: Formal")
	assert.Contains(t, out, "Day 1 of 3")
}

func TestView_DaySwitchingClamps(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: testProgramme()})

	v.Update(key("left"))
	assert.Equal(t, 0, v.Day())

	v.Update(key("j"))
	v.Update(key("l"))
	assert.Equal(t, 1, v.Day())
	assert.Equal(t, "Keynote: AI & Society", v.SelectedSession().Title)
	assert.Contains(t, v.View(), "Day 2 of 3")

	v.Update(key("right"))
	v.Update(key("right"))
	assert.Equal(t, 2, v.Day())
	assert.Nil(t, v.SelectedSession())
	assert.Contains(t, v.View(), "No sessions scheduled.")

	v.Update(key("h"))
	assert.Equal(t, 1, v.Day())
}

func TestView_OpenSession(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: testProgramme()})
	v.Update(key("j"))
	v.Update(key("j"))

	_, cmd := v.Update(key("enter"))
	require.NotNil(t, cmd)

	assert.Equal(t, messages.OpenRequested{Target: domain.SessionRoute("Opening Ceremony")}, cmd())
}

func TestView_OpenOnEmptyDay(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: &domain.Programme{Schedule: []domain.ProgrammeDay{{Day: "Day 1"}}}})

	_, cmd := v.Update(key("enter"))

	assert.Nil(t, cmd)
}

func TestView_Empty(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: &domain.Programme{}})

	out := v.View()
	assert.Contains(t, out, "Programme")
	assert.Contains(t, out, "not been published")
}

func TestView_LoadErrors(t *testing.T) {
	v := loaded(t, &MockProgrammeService{err: errors.New("content unavailable")})
	assert.Contains(t, v.View(), "Error: content unavailable")

	v = NewView(nil, nil, nil)
	v.Update(v.Init()())
	assert.ErrorIs(t, v.Err(), ErrNoProgrammeService)
}

func TestView_ScrollsLongDays(t *testing.T) {
	p := &domain.Programme{Schedule: []domain.ProgrammeDay{{Day: "Day 1"}}}
	for i := range 20 {
		p.Schedule[0].Sessions = append(p.Schedule[0].Sessions, domain.Session{
			Title: string(rune('A' + i)),
			Time:  "09:00",
		})
	}
	v := loaded(t, &MockProgrammeService{programme: p})
	v.SetDimensions(80, 16)

	for range 10 {
		v.Update(key("j"))
	}

	assert.Equal(t, "K", v.SelectedSession().Title)
	assert.Contains(t, v.View(), "of 20]")
}

func TestView_OpenedStatus(t *testing.T) {
	v := loaded(t, &MockProgrammeService{programme: testProgramme()})

	v.Update(messages.Opened{Target: "/programme"})
	assert.Contains(t, v.View(), "Opened /programme")

	v.Update(messages.Opened{Err: errors.New("no browser")})
	assert.Contains(t, v.View(), "open: no browser")
}
