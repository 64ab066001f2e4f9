package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnewsmcp/gnewsmcp/internal/domain"
)

func TestEnvelope_SuccessShape(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	env := domain.Success([]domain.Article{{
		Title:     "headline",
		URL:       "https://a.com/1",
		Publisher: domain.Publisher{Href: "https://a.com", Title: "A"},
	}})
	body, err := json.Marshal(env)
	require.NoError(err)

	assert.JSONEq(`{
		"status": "success",
		"results": [{
			"title": "headline",
			"description": "",
			"published_date": "",
			"url": "https://a.com/1",
			"publisher": {"href": "https://a.com", "title": "A"}
		}]
	}`, string(body))
}

func TestEnvelope_EmptySuccessHasEmptyArray(t *testing.T) {
	body, err := json.Marshal(domain.Success(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"success","results":[]}`, string(body))
}

func TestEnvelope_ErrorShape(t *testing.T) {
	body, err := json.Marshal(domain.Failure("something broke"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"something broke"}`, string(body))

	// Error envelopes never carry a results field.
	assert.NotContains(t, string(body), "results")
}

func TestEnvelope_TableListings(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	body, err := json.Marshal(domain.CountryListing())
	require.NoError(err)
	var countries struct {
		Status    string            `json:"status"`
		Countries map[string]string `json:"countries"`
	}
	require.NoError(json.Unmarshal(body, &countries))
	assert.Equal(domain.StatusSuccess, countries.Status)
	assert.Equal(domain.CountryTable, countries.Countries)

	body, err = json.Marshal(domain.LanguageListing())
	require.NoError(err)
	var languages struct {
		Status    string            `json:"status"`
		Languages map[string]string `json:"languages"`
	}
	require.NoError(json.Unmarshal(body, &languages))
	assert.Equal(domain.StatusSuccess, languages.Status)
	assert.Equal(domain.LanguageTable, languages.Languages)
}
