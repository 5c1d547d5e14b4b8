//go:build unit

package aster

import (
	"errors"
	"os"
	"testing"

	"github.com/lerenn/aster/configs"
	"github.com/lerenn/aster/pkg/aster/consts"
	cachemocks "github.com/lerenn/aster/pkg/cache/mocks"
	"github.com/lerenn/aster/pkg/config"
	configmocks "github.com/lerenn/aster/pkg/config/mocks"
	"github.com/lerenn/aster/pkg/dependencies"
	fsmocks "github.com/lerenn/aster/pkg/fs/mocks"
	"github.com/lerenn/aster/pkg/hooks"
	hooksmocks "github.com/lerenn/aster/pkg/hooks/mocks"
	"github.com/lerenn/aster/pkg/index"
	"github.com/lerenn/aster/pkg/logger"
	promptmocks "github.com/lerenn/aster/pkg/prompt/mocks"
	"github.com/lerenn/aster/pkg/walker"
	walkermocks "github.com/lerenn/aster/pkg/walker/mocks"
	"github.com/lerenn/aster/pkg/xmledit"
	xmleditmocks "github.com/lerenn/aster/pkg/xmledit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	fs     *fsmocks.MockFS
	config *configmocks.MockManager
	cache  *cachemocks.MockStore
	editor *xmleditmocks.MockEditor
	prompt *promptmocks.MockPrompter
	walker *walkermocks.MockWalker
}

func newTestAster(t *testing.T, ctrl *gomock.Controller) (Aster, testMocks) {
	t.Helper()

	m := testMocks{
		fs:     fsmocks.NewMockFS(ctrl),
		config: configmocks.NewMockManager(ctrl),
		cache:  cachemocks.NewMockStore(ctrl),
		editor: xmleditmocks.NewMockEditor(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		walker: walkermocks.NewMockWalker(ctrl),
	}

	a, err := NewAster(NewAsterParams{
		Dependencies: dependencies.New().
			WithFS(m.fs).
			WithConfig(m.config).
			WithCache(m.cache).
			WithEditor(m.editor).
			WithPrompt(m.prompt).
			WithLogger(logger.NewNoopLogger()),
	})
	require.NoError(t, err)
	a.(*realAster).newWalker = func(logger.Logger) walker.Walker { return m.walker }

	m.cache.EXPECT().Path().Return("/cache/res_cache.bin").AnyTimes()
	return a, m
}

func testConfig() config.Config {
	return config.Config{
		CacheDir: "/cache",
		Workers:  3,
		Denylist: []string{"emoji", "f1gender", "m2gender"},
		Excludes: []string{"build"},
	}
}

func testIndex() *index.ResourceIndex {
	return index.New([]index.FileRecord{
		{Path: "res/values/strings.xml", Declared: []string{"app_name", "old_title", "old_label", "party_emoji", "title"}},
		{Path: "res/values-fr/strings.xml", Declared: []string{"app_name", "old_title"}},
		{Path: "src/Main.kt", Referenced: []string{"title"}},
		{Path: "AndroidManifest.xml", Referenced: []string{"app_name"}},
	})
}

func TestNewAster_InvalidDependencies(t *testing.T) {
	_, err := NewAster(NewAsterParams{Dependencies: dependencies.New()})
	assert.ErrorIs(t, err, dependencies.ErrConfigMissing)
}

func TestIndex_WalksEachRootAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)

	var walked []walker.Options
	m.walker.EXPECT().Walk(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(opts walker.Options, _ walker.ExtractFunc) ([]index.FileRecord, error) {
			walked = append(walked, opts)
			switch opts.Root {
			case "app/res":
				return []index.FileRecord{{Path: "app/res/values/strings.xml", Declared: []string{"some_app", "dead"}}}, nil
			case "app/java":
				return []index.FileRecord{{Path: "app/java/Main.java", Referenced: []string{"dead"}}}, nil
			default:
				return []index.FileRecord{{Path: "app/AndroidManifest.xml", Referenced: []string{"some_app"}}}, nil
			}
		})

	var saved *index.ResourceIndex
	m.cache.EXPECT().Save(gomock.Any()).DoAndReturn(func(idx *index.ResourceIndex) error {
		saved = idx
		return nil
	})

	result, err := a.Index(IndexOpts{SourceRoot: "app/java", ResRoot: "app/res", ManifestRoot: "app"})
	require.NoError(t, err)

	require.Len(t, walked, 3)
	assert.Equal(t, walker.Options{Root: "app/res", Patterns: []string{"*.xml"}, Excludes: []string{"build"}, Workers: 3}, walked[0])
	assert.Equal(t, []string{"*.java", "*.kt"}, walked[1].Patterns)
	assert.Equal(t, []string{"AndroidManifest.xml"}, walked[2].Patterns)

	assert.Equal(t, 2, result.Defined)
	assert.Equal(t, 2, result.Used)
	assert.Equal(t, "/cache/res_cache.bin", result.SnapshotPath)
	assert.Equal(t, []string{KindResource, KindSource, KindManifest},
		[]string{result.Walks[0].Kind, result.Walks[1].Kind, result.Walks[2].Kind})
	assert.Len(t, saved.Files(), 3)
	assert.Equal(t, 0, saved.UnusedIDs().Len())
}

func TestIndex_ManifestRootDefaultsToResRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.walker.EXPECT().Walk(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.cache.EXPECT().Save(gomock.Any()).Return(nil)

	result, err := a.Index(IndexOpts{SourceRoot: "java", ResRoot: "res/"})
	require.NoError(t, err)
	assert.Len(t, result.Walks, 2)

	// An explicit manifest root equal to the resource root is skipped too
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.walker.EXPECT().Walk(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.cache.EXPECT().Save(gomock.Any()).Return(nil)

	result, err = a.Index(IndexOpts{SourceRoot: "java", ResRoot: "res/", ManifestRoot: "res"})
	require.NoError(t, err)
	assert.Len(t, result.Walks, 2)
}

func TestIndex_Errors(t *testing.T) {
	t.Run("missing roots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, _ := newTestAster(t, ctrl)
		_, err := a.Index(IndexOpts{ResRoot: "res"})
		assert.ErrorIs(t, err, ErrMissingRoot)
		_, err = a.Index(IndexOpts{SourceRoot: "java"})
		assert.ErrorIs(t, err, ErrMissingRoot)
	})

	t.Run("walk failure aborts before saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newTestAster(t, ctrl)
		m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
		m.walker.EXPECT().Walk(gomock.Any(), gomock.Any()).Return(nil, walker.ErrInvalidRoot)

		_, err := a.Index(IndexOpts{SourceRoot: "java", ResRoot: "res"})
		assert.ErrorIs(t, err, walker.ErrInvalidRoot)
	})
}

func TestCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)

	counts, err := a.Counts()
	require.NoError(t, err)
	// party_emoji is unused but denylisted
	assert.Equal(t, &Counts{Defined: 5, Used: 2, Unused: 2}, counts)
}

func TestCounts_NoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	loadErr := errors.New("snapshot not found")
	m.cache.EXPECT().Load().Return(nil, loadErr)

	_, err := a.Counts()
	assert.ErrorIs(t, err, loadErr)
}

func TestListUnused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)

	unused, err := a.ListUnused()
	require.NoError(t, err)
	assert.Equal(t, []UnusedString{
		{ID: "old_label", Locations: []string{"res/values/strings.xml"}},
		{ID: "old_title", Locations: []string{"res/values/strings.xml", "res/values-fr/strings.xml"}},
	}, unused)
}

func TestRemoveUnused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)
	m.prompt.EXPECT().PromptForConfirmation("Remove 1 unused strings?", false).Return(true, nil)

	matcher := xmledit.ForLocalName("string").Attr("name", "old_title")
	m.editor.EXPECT().RemoveElement("res/values/strings.xml", matcher).Return(true, nil)
	m.editor.EXPECT().RemoveElement("res/values-fr/strings.xml", matcher).Return(true, nil)

	result, err := a.RemoveUnused(RemoveUnusedOpts{Prefix: "old_t"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old_title"}, result.Candidates)
	assert.Equal(t, []Removal{
		{ID: "old_title", Path: "res/values/strings.xml"},
		{ID: "old_title", Path: "res/values-fr/strings.xml"},
	}, result.Removed)
}

func TestRemoveUnused_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)

	writeErr := errors.New("read-only file system")
	m.editor.EXPECT().RemoveElement("res/values/strings.xml", gomock.Any()).Return(false, writeErr)
	m.editor.EXPECT().RemoveElement("res/values/strings.xml", gomock.Any()).Return(true, nil)
	m.editor.EXPECT().RemoveElement("res/values-fr/strings.xml", gomock.Any()).Return(false, nil)

	result, err := a.RemoveUnused(RemoveUnusedOpts{Yes: true})
	assert.ErrorIs(t, err, writeErr)
	assert.Contains(t, err.Error(), "old_label")
	assert.Equal(t, []string{"old_label", "old_title"}, result.Candidates)
	assert.Equal(t, []Removal{{ID: "old_title", Path: "res/values/strings.xml"}}, result.Removed)
}

func TestRemoveUnused_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)
	m.prompt.EXPECT().PromptForConfirmation(gomock.Any(), false).Return(false, nil)
	// No RemoveElement expected

	result, err := a.RemoveUnused(RemoveUnusedOpts{})
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Empty(t, result.Removed)
}

func TestRemoveUnused_NothingToRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	m.config.EXPECT().GetConfigWithFallback().Return(testConfig(), nil)
	m.cache.EXPECT().Load().Return(testIndex(), nil)
	// No prompt expected

	result, err := a.RemoveUnused(RemoveUnusedOpts{Prefix: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
}

func TestInit(t *testing.T) {
	t.Run("writes the default configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newTestAster(t, ctrl)
		m.config.EXPECT().GetConfigPath().Return("/home/u/.aster/config.yaml")
		m.fs.EXPECT().Exists("/home/u/.aster/config.yaml").Return(false, nil)
		m.fs.EXPECT().WriteFileAtomic("/home/u/.aster/config.yaml", configs.DefaultConfigYAML, os.FileMode(0644)).Return(nil)

		assert.NoError(t, a.Init(InitOpts{}))
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newTestAster(t, ctrl)
		m.config.EXPECT().GetConfigPath().Return("/cfg.yaml")
		m.fs.EXPECT().Exists("/cfg.yaml").Return(true, nil)

		assert.ErrorIs(t, a.Init(InitOpts{}), config.ErrConfigAlreadyExists)
	})

	t.Run("force with cache dir", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newTestAster(t, ctrl)
		m.config.EXPECT().GetConfigPath().Return("/cfg.yaml")
		m.fs.EXPECT().Exists("/cfg.yaml").Return(true, nil)
		m.config.EXPECT().DefaultConfig().Return(testConfig())
		expected := testConfig()
		expected.CacheDir = "/tmp/aster"
		m.config.EXPECT().SaveConfig(expected).Return(nil)

		assert.NoError(t, a.Init(InitOpts{Force: true, CacheDir: "/tmp/aster"}))
	})
}

func TestExecuteWithHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestAster(t, ctrl)
	mockHooks := hooksmocks.NewMockHookManagerInterface(ctrl)
	a.(*realAster).deps.HookManager = mockHooks

	loadErr := errors.New("snapshot not found")
	m.cache.EXPECT().Load().Return(nil, loadErr)

	gomock.InOrder(
		mockHooks.EXPECT().ExecutePreHooks(consts.Counts, gomock.Any()).Return(nil),
		mockHooks.EXPECT().ExecuteErrorHooks(consts.Counts, gomock.Any()).
			DoAndReturn(func(_ string, ctx *hooks.HookContext) error {
				assert.ErrorIs(t, ctx.Error, loadErr)
				return nil
			}),
	)

	_, err := a.Counts()
	assert.ErrorIs(t, err, loadErr)
}

func TestExecuteWithHooks_PreHookFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestAster(t, ctrl)
	mockHooks := hooksmocks.NewMockHookManagerInterface(ctrl)
	a.(*realAster).deps.HookManager = mockHooks

	hookErr := errors.New("denied")
	mockHooks.EXPECT().ExecutePreHooks(consts.ListUnused, gomock.Any()).Return(hookErr)
	// The operation never runs, so no Load is expected

	_, err := a.ListUnused()
	assert.ErrorIs(t, err, hookErr)
}
