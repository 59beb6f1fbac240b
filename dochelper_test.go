package dochelper_test

import (
	"testing"

	"github.com/itsatony/go-dochelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E Integration Tests - Zero Mocks
// These tests exercise the public API from registry setup to composed docs.

func newArgRegistry(t *testing.T) *dochelper.Registry {
	t.Helper()
	docs, err := dochelper.NewRegistryWith([]dochelper.Doc{
		dochelper.Describe("arg1", "Docstring for arg1"),
		dochelper.Describe("arg2", "Docstring for arg2"),
		dochelper.Typed("arg3", "type for arg3", "Docstring for arg3"),
	})
	require.NoError(t, err)
	return docs
}

func targetFunc(arg1 int) {}

func TestE2E_RegistryStoresDocs(t *testing.T) {
	docs := newArgRegistry(t)

	assert.Equal(t, 3, docs.Len())
	assert.Equal(t, []string{"arg1", "arg2", "arg3"}, docs.Names())
}

func TestE2E_Get(t *testing.T) {
	docs := newArgRegistry(t)

	assert.Equal(t, "arg1: Docstring for arg1", docs.Get([]string{"arg1"}))
	assert.Equal(t,
		"arg1: Docstring for arg1\n    arg3 (type for arg3): Docstring for arg3",
		docs.Get([]string{"arg1", "arg3"}),
	)
}

func TestE2E_GetIsIdempotent(t *testing.T) {
	docs := newArgRegistry(t)

	first := docs.Get([]string{"arg1", "arg2", "arg3", "missing"}, dochelper.WithIndent(2))
	second := docs.Get([]string{"arg1", "arg2", "arg3", "missing"}, dochelper.WithIndent(2))
	assert.Equal(t, first, second)
}

func TestE2E_SplitString(t *testing.T) {
	template := "This is docstring\n" +
		"    with multiple lines of args:\n" +
		"<< arg1,arg2,  arg3 >>\n" +
		"<<arg1, arg3>>\n"

	segments := dochelper.SplitString(template)

	require.Len(t, segments, 5)
	assert.Equal(t, "This is docstring\n    with multiple lines of args:\n", segments[0].Text)
	assert.Equal(t, []string{"arg1", "arg2", "arg3"}, segments[1].Tokens)
	assert.Equal(t, "\n", segments[2].Text)
	assert.Equal(t, []string{"arg1", "arg3"}, segments[3].Tokens)
	assert.Equal(t, "\n", segments[4].Text)
}

func TestE2E_SplitStringWithoutLeadingLiteral(t *testing.T) {
	segments := dochelper.SplitString("<< arg1,arg2,  arg3 >>\n<<arg1, arg3>>\n")

	require.Len(t, segments, 4)
	assert.Equal(t, dochelper.SegmentPlaceholder, segments[0].Kind)
	assert.Equal(t, []string{"arg1", "arg2", "arg3"}, segments[0].Tokens)
	assert.Equal(t, "\n", segments[1].Text)
	assert.Equal(t, []string{"arg1", "arg3"}, segments[2].Tokens)
}

func TestE2E_ComposeApply(t *testing.T) {
	docs := newArgRegistry(t)

	fn := docs.Compose(`Here is an example
        <<arg1, arg2>>
    Args:
            <<arg2, arg3, 8>>
    `).Apply(dochelper.MustFunc("targetFunc", targetFunc, "arg1"))

	assert.Equal(t, "Here is an example\n"+
		"    arg1: Docstring for arg1\n"+
		"    arg2: Docstring for arg2\n"+
		"Args:\n"+
		"        arg2: Docstring for arg2\n"+
		"        arg3 (type for arg3): Docstring for arg3", fn.Doc)
}

func TestE2E_ComposeIndentAtTop(t *testing.T) {
	docs := newArgRegistry(t)

	fn := docs.Compose(`Here is an example
    <<arg1, arg2>>
    Args:
    <<arg2, arg3, 8>>
    `, dochelper.WithIndentAtTop(true)).Apply(dochelper.MustFunc("targetFunc", targetFunc, "arg1"))

	assert.Equal(t, "Here is an example\n"+
		"    arg1: Docstring for arg1\n"+
		"    arg2: Docstring for arg2\n"+
		"Args:\n"+
		"        arg2: Docstring for arg2\n"+
		"        arg3 (type for arg3): Docstring for arg3", fn.Doc)
}

func TestE2E_ComposeWithoutPlaceholders(t *testing.T) {
	docs := newArgRegistry(t)

	fn := docs.Compose(`Here is an example of simple docstring with no argument substitution
    Args:
        args1
    `).Apply(dochelper.MustFunc("targetFunc", targetFunc, "arg1"))

	assert.Equal(t, "Here is an example of simple docstring with no argument substitution\n"+
		"Args:\n"+
		"    args1", fn.Doc)
}

func TestE2E_ComposeDeferredParameters(t *testing.T) {
	docs := newArgRegistry(t)

	fn := docs.Compose(`Here is an example of simple docstring to replace function's arguments
    Args:
        << >>
    `).Apply(dochelper.MustFunc("targetFunc", targetFunc, "arg1"))

	assert.Equal(t, "Here is an example of simple docstring to replace function's arguments\n"+
		"Args:\n"+
		"    arg1: Docstring for arg1", fn.Doc)
}

func TestE2E_ComposeKeepsBraces(t *testing.T) {
	docs := newArgRegistry(t)

	fn := docs.Compose(`Here is an example with {braces} and {func}
    Args:
        << >>
    `).Apply(dochelper.MustFunc("targetFunc", targetFunc, "arg1"))

	assert.Equal(t, "Here is an example with {braces} and {func}\n"+
		"Args:\n"+
		"    arg1: Docstring for arg1", fn.Doc)
}

func TestE2E_ComposeMethodExcludesReceiver(t *testing.T) {
	docs := newArgRegistry(t)

	type service struct{}
	method := func(s *service, arg1 int, arg3 string) {}

	fn := docs.Compose("Runs the service.\n<< >>").
		Apply(dochelper.MustMethod("service", "Run", method, "arg1", "arg3"))

	assert.Equal(t, "Runs the service.\n"+
		"arg1: Docstring for arg1\n"+
		"    arg3 (type for arg3): Docstring for arg3", fn.Doc)
}

func TestE2E_UnknownNamesDegrade(t *testing.T) {
	docs := newArgRegistry(t)

	text := docs.Compose("Params:\n<<arg1, typo>>").Text()
	assert.Equal(t, "Params:\narg1: Docstring for arg1\n    typo: ", text)
}
