package mockfhir

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/contracts"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/constvars"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/exceptions"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/fhir_dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mockBackend keeps every resource as a decoded JSON object so search filters
// can inspect fields without a schema per resource type.
type mockBackend struct {
	mu        sync.RWMutex
	resources map[string]map[string]map[string]interface{}
	Log       *zap.Logger
}

func NewMockBackend(logger *zap.Logger) (contracts.FHIRBackend, error) {
	backend := &mockBackend{
		resources: make(map[string]map[string]map[string]interface{}),
		Log:       logger,
	}
	if err := backend.seed(); err != nil {
		return nil, err
	}
	return backend, nil
}

func (b *mockBackend) Name() string {
	return "mock"
}

func (b *mockBackend) Ping(ctx context.Context) error {
	return nil
}

func (b *mockBackend) seed() error {
	var fixtures []map[string]interface{}
	if err := json.Unmarshal([]byte(fixtureData), &fixtures); err != nil {
		return err
	}
	for _, resource := range fixtures {
		resourceType, _ := resource["resourceType"].(string)
		id, _ := resource["id"].(string)
		if resourceType == "" || id == "" {
			continue
		}
		b.put(resourceType, id, resource)
	}
	return nil
}

func (b *mockBackend) put(resourceType, id string, resource map[string]interface{}) {
	if b.resources[resourceType] == nil {
		b.resources[resourceType] = make(map[string]map[string]interface{})
	}
	b.resources[resourceType][id] = resource
}

func (b *mockBackend) SearchResources(ctx context.Context, resourceType string, params url.Values) (*fhir_dto.Bundle, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var matched []map[string]interface{}
	for _, resource := range b.resources[resourceType] {
		if matchesParams(resourceType, resource, params) {
			matched = append(matched, resource)
		}
	}

	// Deterministic order so paging is stable across calls.
	sort.Slice(matched, func(i, j int) bool {
		left, _ := matched[i]["id"].(string)
		right, _ := matched[j]["id"].(string)
		return left < right
	})

	total := len(matched)
	offset := parseIntParam(params, constvars.FhirSearchParamOffset, 0)
	count := parseIntParam(params, constvars.FhirSearchParamCount, 20)
	if offset > total {
		offset = total
	}
	end := offset + count
	if end > total {
		end = total
	}
	matched = matched[offset:end]

	bundle := &fhir_dto.Bundle{
		ResourceType: "Bundle",
		Type:         constvars.FhirBundleTypeSearchset,
		Total:        total,
	}
	for _, resource := range matched {
		raw, err := json.Marshal(resource)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: raw})
	}
	return bundle, nil
}

func (b *mockBackend) ReadResource(ctx context.Context, resourceType, resourceID string) (json.RawMessage, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	resource, ok := b.resources[resourceType][resourceID]
	if !ok {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, resourceType)
	}
	raw, err := json.Marshal(resource)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return raw, nil
}

func (b *mockBackend) CreateResource(ctx context.Context, resourceType string, payload json.RawMessage) (json.RawMessage, error) {
	resource := make(map[string]interface{})
	if err := json.Unmarshal(payload, &resource); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	id := uuid.New().String()
	resource["resourceType"] = resourceType
	resource["id"] = id
	resource["meta"] = map[string]interface{}{
		"versionId":   "1",
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	}

	b.mu.Lock()
	b.put(resourceType, id, resource)
	b.mu.Unlock()

	b.Log.Info("mockBackend.CreateResource stored fixture resource",
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return json.Marshal(resource)
}

func (b *mockBackend) UpdateResource(ctx context.Context, resourceType, resourceID string, payload json.RawMessage) (json.RawMessage, error) {
	resource := make(map[string]interface{})
	if err := json.Unmarshal(payload, &resource); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	existing, ok := b.resources[resourceType][resourceID]
	if !ok {
		return nil, exceptions.ErrFHIRResourceNotFound(nil, resourceType)
	}

	version := 1
	if meta, ok := existing["meta"].(map[string]interface{}); ok {
		if versionId, ok := meta["versionId"].(string); ok {
			if parsed, err := strconv.Atoi(versionId); err == nil {
				version = parsed
			}
		}
	}

	resource["resourceType"] = resourceType
	resource["id"] = resourceID
	resource["meta"] = map[string]interface{}{
		"versionId":   strconv.Itoa(version + 1),
		"lastUpdated": time.Now().UTC().Format(time.RFC3339),
	}
	b.put(resourceType, resourceID, resource)

	return json.Marshal(resource)
}

func (b *mockBackend) DeleteResource(ctx context.Context, resourceType, resourceID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.resources[resourceType][resourceID]; !ok {
		return exceptions.ErrFHIRResourceNotFound(nil, resourceType)
	}
	delete(b.resources[resourceType], resourceID)
	return nil
}

func parseIntParam(params url.Values, key string, defaultValue int) int {
	value, err := strconv.Atoi(params.Get(key))
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}

// matchesParams applies the search filters the typed endpoints use. Unknown
// parameters are ignored, matching the permissive behavior of a real server
// under lenient search handling.
func matchesParams(resourceType string, resource map[string]interface{}, params url.Values) bool {
	for key, values := range params {
		if len(values) == 0 || values[0] == "" {
			continue
		}
		value := values[0]
		switch key {
		case constvars.FhirSearchParamCount, constvars.FhirSearchParamOffset, constvars.FhirSearchParamSort:
			continue
		case constvars.FhirSearchParamID:
			if id, _ := resource["id"].(string); id != value {
				return false
			}
		case "name":
			if !matchesName(resource, value) {
				return false
			}
		case "identifier":
			if !matchesIdentifier(resource, value) {
				return false
			}
		case "gender":
			if stringField(resource, "gender") != value {
				return false
			}
		case "birthdate":
			if stringField(resource, "birthDate") != value {
				return false
			}
		case "active":
			active, _ := resource["active"].(bool)
			if strconv.FormatBool(active) != value {
				return false
			}
		case "specialty":
			if !matchesSpecialty(resource, value) {
				return false
			}
		case "status":
			if stringField(resource, "status") != value {
				return false
			}
		case "intent":
			if stringField(resource, "intent") != value {
				return false
			}
		case "date":
			if !strings.HasPrefix(stringField(resource, "start"), value) {
				return false
			}
		case "patient", "subject":
			if !matchesReference(resource, value, "Patient") {
				return false
			}
		case "practitioner", "actor", "requester":
			if !matchesReference(resource, value, "Practitioner") {
				return false
			}
		case "category":
			if !matchesCodeableConceptList(resource, "category", value) {
				return false
			}
		case "code":
			if !matchesCodeableConcept(resource, "code", value) {
				return false
			}
		default:
			continue
		}
	}
	return true
}

func stringField(resource map[string]interface{}, key string) string {
	value, _ := resource[key].(string)
	return value
}

func matchesName(resource map[string]interface{}, query string) bool {
	names, _ := resource["name"].([]interface{})
	query = strings.ToLower(query)
	for _, entry := range names {
		name, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if family, _ := name["family"].(string); strings.Contains(strings.ToLower(family), query) {
			return true
		}
		if text, _ := name["text"].(string); strings.Contains(strings.ToLower(text), query) {
			return true
		}
		givens, _ := name["given"].([]interface{})
		for _, given := range givens {
			if givenStr, ok := given.(string); ok && strings.Contains(strings.ToLower(givenStr), query) {
				return true
			}
		}
	}
	return false
}

func matchesIdentifier(resource map[string]interface{}, query string) bool {
	identifiers, _ := resource["identifier"].([]interface{})
	for _, entry := range identifiers {
		identifier, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if value, _ := identifier["value"].(string); value == query {
			return true
		}
	}
	return false
}

func matchesSpecialty(resource map[string]interface{}, query string) bool {
	qualifications, _ := resource["qualification"].([]interface{})
	query = strings.ToLower(query)
	for _, entry := range qualifications {
		qualification, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		code, _ := qualification["code"].(map[string]interface{})
		if text, _ := code["text"].(string); strings.Contains(strings.ToLower(text), query) {
			return true
		}
	}
	return false
}

// matchesReference accepts both "Patient/123" and bare "123" queries, the way
// FHIR reference search parameters behave.
func matchesReference(resource map[string]interface{}, query, targetType string) bool {
	want := query
	if !strings.Contains(want, "/") {
		want = fmt.Sprintf("%s/%s", targetType, query)
	}

	if subject, ok := resource["subject"].(map[string]interface{}); ok {
		if reference, _ := subject["reference"].(string); reference == want {
			return true
		}
	}
	if requester, ok := resource["requester"].(map[string]interface{}); ok {
		if reference, _ := requester["reference"].(string); reference == want {
			return true
		}
	}
	if recipient, ok := resource["recipient"].(map[string]interface{}); ok {
		if reference, _ := recipient["reference"].(string); reference == want {
			return true
		}
	}
	participants, _ := resource["participant"].([]interface{})
	for _, entry := range participants {
		participant, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		actor, _ := participant["actor"].(map[string]interface{})
		if reference, _ := actor["reference"].(string); reference == want {
			return true
		}
	}
	return false
}

func matchesCodeableConcept(resource map[string]interface{}, key, query string) bool {
	concept, ok := resource[key].(map[string]interface{})
	if !ok {
		return false
	}
	return codeableConceptContains(concept, query)
}

func matchesCodeableConceptList(resource map[string]interface{}, key, query string) bool {
	concepts, _ := resource[key].([]interface{})
	for _, entry := range concepts {
		if concept, ok := entry.(map[string]interface{}); ok && codeableConceptContains(concept, query) {
			return true
		}
	}
	return false
}

func codeableConceptContains(concept map[string]interface{}, query string) bool {
	if text, _ := concept["text"].(string); strings.EqualFold(text, query) {
		return true
	}
	codings, _ := concept["coding"].([]interface{})
	for _, entry := range codings {
		coding, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if code, _ := coding["code"].(string); code == query {
			return true
		}
	}
	return false
}
