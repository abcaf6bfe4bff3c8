package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	posts        map[string]int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:    tc,
		posts: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, s.tc.DB.Exec(`TRUNCATE posts, post_translations RESTART IDENTITY CASCADE`).Error
	})

	// Background steps
	sc.Step(`^the translatable server is running$`, s.theServerIsRunning)
	sc.Step(`^a post "([^"]*)" exists$`, s.aPostExists)
	sc.Step(`^post "([^"]*)" has title "([^"]*)" in "([^"]*)"$`, s.postHasTitleIn)

	// Request steps
	sc.Step(`^I request the locales in "([^"]*)"$`, s.iRequestTheLocalesIn)
	sc.Step(`^I request the fields of "([^"]*)"$`, s.iRequestTheFieldsOf)
	sc.Step(`^I request post "([^"]*)"$`, s.iRequestPost)
	sc.Step(`^I request the post with id "([^"]*)"$`, s.iRequestThePostWithID)
	sc.Step(`^I submit the following JSON for post "([^"]*)":$`, s.iSubmitJSONForPost)
	sc.Step(`^I submit the form "([^"]*)" for post "([^"]*)"$`, s.iSubmitFormForPost)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should be JSON:$`, s.theResponseShouldBeJSON)
	sc.Step(`^the field "([^"]*)" should have value "([^"]*)" in "([^"]*)"$`, s.theFieldShouldHaveValueIn)
	sc.Step(`^the field "([^"]*)" should have no value in "([^"]*)"$`, s.theFieldShouldHaveNoValueIn)

	// Database steps
	sc.Step(`^post "([^"]*)" should have (\d+) translations?$`, s.postShouldHaveTranslations)
	sc.Step(`^post "([^"]*)" should have title "([^"]*)" in "([^"]*)"$`, s.postShouldHaveTitleIn)
}

// Background steps

func (s *StepsContext) theServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aPostExists(slug string) error {
	var id int64
	if err := s.tc.DB.Raw(`INSERT INTO posts (slug) VALUES (?) RETURNING id`, slug).Scan(&id).Error; err != nil {
		return err
	}
	s.posts[slug] = id
	return nil
}

func (s *StepsContext) postHasTitleIn(slug, title, locale string) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}
	return s.tc.DB.Exec(`
		INSERT INTO post_translations (post_id, locale, title) VALUES (?, ?, ?)
		ON CONFLICT (post_id, locale) DO UPDATE SET title = EXCLUDED.title
	`, id, locale, title).Error
}

func (s *StepsContext) postID(slug string) (int64, error) {
	id, ok := s.posts[slug]
	if !ok {
		return 0, fmt.Errorf("unknown post %q", slug)
	}
	return id, nil
}

// Request steps

func (s *StepsContext) do(method, path, contentType string, body io.Reader) error {
	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

func (s *StepsContext) iRequestTheLocalesIn(lang string) error {
	return s.do("GET", "/locales?lang="+lang, "", nil)
}

func (s *StepsContext) iRequestTheFieldsOf(resource string) error {
	return s.do("GET", "/resources/"+resource+"/fields", "", nil)
}

func (s *StepsContext) iRequestPost(slug string) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}
	return s.do("GET", fmt.Sprintf("/resources/posts/%d", id), "", nil)
}

func (s *StepsContext) iRequestThePostWithID(id string) error {
	return s.do("GET", "/resources/posts/"+id, "", nil)
}

func (s *StepsContext) iSubmitJSONForPost(slug string, body *godog.DocString) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}
	return s.do("PUT", fmt.Sprintf("/resources/posts/%d", id), "application/json", strings.NewReader(body.Content))
}

func (s *StepsContext) iSubmitFormForPost(form, slug string) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}
	return s.do("PUT", fmt.Sprintf("/resources/posts/%d", id), "application/x-www-form-urlencoded", strings.NewReader(form))
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldBeJSON(expected *godog.DocString) error {
	var want, got interface{}
	if err := json.Unmarshal([]byte(expected.Content), &want); err != nil {
		return fmt.Errorf("invalid expected JSON: %w", err)
	}
	if err := json.Unmarshal(s.responseBody, &got); err != nil {
		return fmt.Errorf("response is not JSON: %w", err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("expected %s, got %s", expected.Content, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) fieldValues(attribute string) (map[string]string, error) {
	var record struct {
		Fields []struct {
			Attribute string            `json:"attribute"`
			Value     map[string]string `json:"value"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(s.responseBody, &record); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	for _, f := range record.Fields {
		if f.Attribute == attribute {
			return f.Value, nil
		}
	}
	return nil, fmt.Errorf("field %q not found in response: %s", attribute, string(s.responseBody))
}

func (s *StepsContext) theFieldShouldHaveValueIn(attribute, value, locale string) error {
	values, err := s.fieldValues(attribute)
	if err != nil {
		return err
	}
	if got, ok := values[locale]; !ok || got != value {
		return fmt.Errorf("expected %s[%s] to be %q, got %v", attribute, locale, value, values)
	}
	return nil
}

func (s *StepsContext) theFieldShouldHaveNoValueIn(attribute, locale string) error {
	values, err := s.fieldValues(attribute)
	if err != nil {
		return err
	}
	if got, ok := values[locale]; ok {
		return fmt.Errorf("expected no %s value in %s, got %q", attribute, locale, got)
	}
	return nil
}

// Database steps

func (s *StepsContext) postShouldHaveTranslations(slug string, expected int) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}

	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM post_translations WHERE post_id = ?`, id).Scan(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d translations, found %d", expected, count)
	}
	return nil
}

func (s *StepsContext) postShouldHaveTitleIn(slug, title, locale string) error {
	id, err := s.postID(slug)
	if err != nil {
		return err
	}

	var got string
	err = s.tc.DB.Raw(`SELECT title FROM post_translations WHERE post_id = ? AND locale = ?`, id, locale).Scan(&got).Error
	if err != nil {
		return err
	}
	if got != title {
		return fmt.Errorf("expected title %q in %s, got %q", title, locale, got)
	}
	return nil
}
