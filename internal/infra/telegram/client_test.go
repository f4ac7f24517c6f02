package telegram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type fakeSender struct {
	to   []string
	text []string
	opts []*telebot.SendOptions
	err  error
}

func (f *fakeSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.to = append(f.to, to.Recipient())
	f.text = append(f.text, what.(string))
	for _, o := range opts {
		if so, ok := o.(*telebot.SendOptions); ok {
			f.opts = append(f.opts, so)
		}
	}
	return &telebot.Message{}, nil
}

// fakeContext overrides the handful of telebot.Context methods the adapters use.
// Calling anything else panics on the nil embedded interface.
type fakeContext struct {
	telebot.Context
	sender     *telebot.User
	chat       *telebot.Chat
	callback   *telebot.Callback
	text       string
	args       []string
	sent       []string
	edited     []string
	editErr    error
	respondErr error
	responded  int
}

func (f *fakeContext) Sender() *telebot.User       { return f.sender }
func (f *fakeContext) Chat() *telebot.Chat         { return f.chat }
func (f *fakeContext) Callback() *telebot.Callback { return f.callback }
func (f *fakeContext) Text() string                { return f.text }
func (f *fakeContext) Args() []string              { return f.args }

func (f *fakeContext) Respond(_ ...*telebot.CallbackResponse) error {
	f.responded++
	return f.respondErr
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what.(string))
	return nil
}

func (f *fakeContext) Edit(what interface{}, _ ...interface{}) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.edited = append(f.edited, what.(string))
	return nil
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	s := &fakeSender{}
	a := &TelebotAdapter{bot: s}

	require.NoError(t, a.SendMessage("@frozen_fruits_channel", "📢 привет", nil))
	require.NoError(t, a.SendMessage("-1001234567890", "📢 пока", &telebot.SendOptions{ParseMode: telebot.ModeMarkdown}))

	assert.Equal(t, []string{"@frozen_fruits_channel", "-1001234567890"}, s.to)
	assert.Equal(t, []string{"📢 привет", "📢 пока"}, s.text)
	require.Len(t, s.opts, 2)
	assert.NotNil(t, s.opts[0])
	assert.Equal(t, telebot.ModeMarkdown, s.opts[1].ParseMode)
}

func TestTelebotAdapter_PropagatesError(t *testing.T) {
	sendErr := errors.New("telegram: chat not found (400)")
	a := &TelebotAdapter{bot: &fakeSender{err: sendErr}}

	assert.ErrorIs(t, a.SendMessage("@nowhere", "text", nil), sendErr)
}

func TestContextResponder(t *testing.T) {
	c := &fakeContext{}
	r := contextResponder{c: c}

	require.NoError(t, r.Reply("reply", nil))
	require.NoError(t, r.Edit("edit", nil))

	assert.Equal(t, []string{"reply"}, c.sent)
	assert.Equal(t, []string{"edit"}, c.edited)
}

func TestContextResponder_SameContentIsNotAnError(t *testing.T) {
	r := contextResponder{c: &fakeContext{editErr: telebot.ErrSameMessageContent}}
	assert.NoError(t, r.Edit("menu", nil))

	editErr := errors.New("telegram: message to edit not found (400)")
	r = contextResponder{c: &fakeContext{editErr: editErr}}
	assert.ErrorIs(t, r.Edit("menu", nil), editErr)
}

func TestCommandFromContext(t *testing.T) {
	c := &fakeContext{
		sender: &telebot.User{ID: 42, FirstName: "Анна"},
		args:   []string{"hello", "world"},
	}

	cmd := commandFromContext(c, "broadcast")
	assert.Equal(t, "broadcast", cmd.Name)
	assert.Equal(t, int64(42), cmd.SenderID)
	assert.Equal(t, "Анна", cmd.SenderFirstName)
	assert.Equal(t, []string{"hello", "world"}, cmd.Args)

	anon := commandFromContext(&fakeContext{}, "start")
	assert.Zero(t, anon.SenderID)
}
