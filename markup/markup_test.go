package markup_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/0xalexb/spindle/component"
	"github.com/0xalexb/spindle/component/legacy"
	"github.com/0xalexb/spindle/markup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected markup.Mode
		wantErr  bool
	}{
		{input: "", expected: markup.Legacy},
		{input: "legacy", expected: markup.Legacy},
		{input: "LEGACY", expected: markup.Legacy},
		{input: "none", expected: markup.Plain},
		{input: "plain", expected: markup.Plain},
		{input: "minimessage", expected: markup.Modern},
		{input: " modern ", expected: markup.Modern},
		{input: "html", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			mode, err := markup.ParseMode(testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, markup.ErrUnknownMode)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, mode)
		})
	}
}

func TestMode_TextRoundTrip(t *testing.T) {
	t.Parallel()

	var decoded struct {
		Mode markup.Mode `json:"mode"`
	}

	err := json.Unmarshal([]byte(`{"mode":"minimessage"}`), &decoded)
	require.NoError(t, err)
	assert.Equal(t, markup.Modern, decoded.Mode)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"modern"}`, string(encoded))

	_, err = markup.Mode(42).MarshalText()
	require.ErrorIs(t, err, markup.ErrUnknownMode)
}

func TestNew_Transform(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mode     markup.Mode
		input    string
		expected string
	}{
		{name: "plain keeps codes", mode: markup.Plain, input: "&cHello", expected: "&cHello"},
		{name: "legacy strips codes", mode: markup.Legacy, input: "&cHello", expected: "Hello"},
		{name: "legacy ignores tags", mode: markup.Legacy, input: "<red>Hello", expected: "<red>Hello"},
		{name: "modern strips tags", mode: markup.Modern, input: "<red>Hello</red>", expected: "Hello"},
		{name: "modern ignores codes", mode: markup.Modern, input: "&cHello", expected: "&cHello"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			codec, err := markup.New(testCase.mode, markup.DefaultComponents())
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, codec.Transform(testCase.input))
		})
	}
}

func TestNew_Idempotence(t *testing.T) {
	t.Parallel()

	inputs := []string{"&cHello &lworld", "<red>Hello</red> <b>world</b>", "plain", ""}

	for _, mode := range []markup.Mode{markup.Plain, markup.Legacy, markup.Modern} {
		codec, err := markup.New(mode, markup.DefaultComponents())
		require.NoError(t, err)

		for _, input := range inputs {
			once := codec.Transform(input)
			assert.Equal(t, once, codec.Transform(once), "mode %s input %q", mode, input)
		}
	}
}

func TestNew_SectionSerializer(t *testing.T) {
	t.Parallel()

	components := markup.DefaultComponents().WithSerializer(legacy.Section())

	codec, err := markup.New(markup.Legacy, components)
	require.NoError(t, err)
	assert.Equal(t, "§cHello", codec.Transform("&cHello"))

	codec, err = markup.New(markup.Modern, components)
	require.NoError(t, err)
	assert.Equal(t, "§c§lHi", codec.Transform("<red><bold>Hi"))
}

func TestNew_ComponentsUnavailable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		mode       markup.Mode
		components *markup.Components
	}{
		{name: "modern without components", mode: markup.Modern, components: nil},
		{name: "legacy without components", mode: markup.Legacy, components: nil},
		{name: "modern without decoder", mode: markup.Modern, components: &markup.Components{Serializer: component.PlainSerializer{}}},
		{name: "legacy without serializer", mode: markup.Legacy, components: &markup.Components{Legacy: legacy.Ampersand()}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			codec, err := markup.New(testCase.mode, testCase.components)
			require.ErrorIs(t, err, markup.ErrComponentsUnavailable)
			assert.Nil(t, codec)
		})
	}
}

func TestNew_PlainNeedsNoComponents(t *testing.T) {
	t.Parallel()

	codec, err := markup.New(markup.Plain, nil)
	require.NoError(t, err)
	assert.Equal(t, "&cx", codec.Transform("&cx"))
}

func TestNew_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := markup.New(markup.Mode(9), markup.DefaultComponents())
	require.ErrorIs(t, err, markup.ErrUnknownMode)
}

func TestMust_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { markup.Must(markup.Modern, nil) })
	assert.NotPanics(t, func() { markup.Must(markup.Plain, nil) })
}

func TestSelector_Select(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	selector, err := markup.NewSelector(markup.Legacy, markup.DefaultComponents(), markup.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, markup.Legacy, selector.Mode())
	assert.Equal(t, "Hello", selector.Transform("&cHello"))

	require.NoError(t, selector.Select(markup.Plain))
	assert.Equal(t, markup.Plain, selector.Mode())
	assert.Equal(t, "&cHello", selector.Transform("&cHello"))
	assert.Contains(t, buf.String(), "serializer mode changed")
}

func TestSelector_FailsFast(t *testing.T) {
	t.Parallel()

	_, err := markup.NewSelector(markup.Modern, nil)
	require.ErrorIs(t, err, markup.ErrComponentsUnavailable)

	selector, err := markup.NewSelector(markup.Plain, nil)
	require.NoError(t, err)

	err = selector.Select(markup.Legacy)
	require.ErrorIs(t, err, markup.ErrComponentsUnavailable)
	assert.Equal(t, markup.Plain, selector.Mode(), "failed selection keeps the previous mode")
}

func TestComponentCodec_ZeroValue(t *testing.T) {
	t.Parallel()

	var codec markup.ComponentCodec

	assert.Equal(t, "&cHello", codec.Transform("&cHello"))
}

func TestSelector_ZeroValue(t *testing.T) {
	t.Parallel()

	var selector markup.Selector

	assert.Equal(t, markup.Plain, selector.Mode())
	assert.Equal(t, "&cHello", selector.Transform("&cHello"))

	require.ErrorIs(t, selector.Select(markup.Legacy), markup.ErrComponentsUnavailable)
	require.NoError(t, selector.Select(markup.Plain))
	assert.Equal(t, markup.Plain, selector.Mode())
}

func TestSelector_ConcurrentReads(t *testing.T) {
	t.Parallel()

	selector, err := markup.NewSelector(markup.Legacy, markup.DefaultComponents())
	require.NoError(t, err)

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				out := selector.Transform("&aA")
				if out != "A" && out != "&aA" {
					t.Errorf("unexpected transform output %q", out)
				}
			}
		}()
	}

	require.NoError(t, selector.Select(markup.Plain))
	wg.Wait()
}
