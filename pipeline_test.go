package paperext_test

import (
	"strings"
	"testing"

	"github.com/paperext/paperext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	t.Run("OrdersSections", func(t *testing.T) {
		t.Parallel()
		got := paperext.Combine(paperext.Result{
			Title:    "Alpine flora survey",
			Abstract: "We surveyed plots.",
			MainText: "Plots were on scree.",
		})
		assert.Equal(t, "Alpine flora survey We surveyed plots. Plots were on scree.", got)
		assert.NotContains(t, got, "\n")
	})

	t.Run("SkipsEmptySections", func(t *testing.T) {
		t.Parallel()
		got := paperext.Combine(paperext.Result{
			Title:    "Alpine flora survey",
			MainText: "Plots were on scree.",
		})
		assert.Equal(t, "Alpine flora survey Plots were on scree.", got)
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, paperext.Combine(paperext.Result{}))
	})
}

func TestSelectText(t *testing.T) {
	t.Parallel()

	t.Run("SparseResultUsesFullPageDump", func(t *testing.T) {
		t.Parallel()
		doc := doclingDoc(
			para("Seeds germinated within five days under constant light.", 1),
			para("Germination slowed markedly at higher salinity.", 2),
		)

		got := paperext.SelectText(doc, paperext.Result{})

		assert.Contains(t, got, "Seeds germinated within five days")
		assert.Contains(t, got, "Germination slowed markedly")
	})

	t.Run("SparseResultKeptWhenDumpEmpty", func(t *testing.T) {
		t.Parallel()
		doc := doclingDoc()

		got := paperext.SelectText(doc, paperext.Result{MainText: "only three words"})

		assert.Equal(t, "only three words", got)
	})

	t.Run("AboveSparseLimitKeepsPrimary", func(t *testing.T) {
		t.Parallel()
		doc := doclingDoc(
			para("Seeds germinated within five days under constant light.", 1),
			para("Germination slowed markedly at higher salinity.", 2),
		)
		res := paperext.Result{
			MainText: "Germination trials ran for thirty days across four light regimes with daily scoring of radicle emergence and seedling vigour under controlled humidity throughout the full observation period overall.",
		}

		got := paperext.SelectText(doc, res)

		assert.Equal(t, paperext.Combine(res), got)
	})

	t.Run("AdoptsLongerEnhancedResult", func(t *testing.T) {
		t.Parallel()
		got := paperext.SelectText(lichenDoc(), paperext.Result{
			MainText: "The crude extracts showed activity against several strains tested here today",
		})

		assert.Contains(t, got, "Screening of lichen extracts against resistant bacteria")
		assert.Contains(t, got, "Extracts were prepared in acetone")
	})
}

func TestExtractText(t *testing.T) {
	t.Parallel()

	t.Run("InvalidSchema", func(t *testing.T) {
		t.Parallel()
		_, err := paperext.ExtractText(&paperext.Document{Schema: "pdf"})
		require.Error(t, err)
		assert.Equal(t, paperext.EINVALIDFORMAT, paperext.ErrorCode(err))
	})

	t.Run("FullDocument", func(t *testing.T) {
		t.Parallel()
		doc := doclingDoc(
			header(1, "Bioactive terpenoids from mountain sage", 1),
			header(0, "Abstract", 1),
			para("We report three new terpenoids with antifungal effects.", 1),
			header(0, "1 | INTRODUCTION", 1),
			para("Sage species are rich in volatile terpenoids.", 2),
			para("Essential oils were obtained by hydrodistillation.", 2),
		)

		got, err := paperext.ExtractText(doc)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, "Bioactive terpenoids from mountain sage"))
		assert.Contains(t, got, "Sage species are rich in volatile terpenoids.")
	})
}
