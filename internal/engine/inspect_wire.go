package engine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/docker/go-connections/nat"
)

// inspectRecord mirrors the subset of `container inspect` JSON that is read.
// Pointer fields distinguish a missing key from an empty value.
type inspectRecord struct {
	ID              string                 `json:"Id"`
	Name            *string                `json:"Name"`
	NetworkSettings *networkSettingsRecord `json:"NetworkSettings"`
}

type networkSettingsRecord struct {
	Ports    json.RawMessage `json:"Ports"`
	Networks json.RawMessage `json:"Networks"`
}

type endpointRecord struct {
	IPAddress string `json:"IPAddress"`
}

type rawEntry struct {
	Key   string
	Value json.RawMessage
}

// decodeInspectOutput parses the JSON array printed by `container inspect`.
// Any malformed record fails the whole batch.
func decodeInspectOutput(data []byte) ([]domain.InspectedContainer, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, NewDecodeError(-1, "expected a JSON array", err)
	}
	// "null" unmarshals without error; "[]" yields an empty, non-nil slice.
	if records == nil {
		return nil, NewDecodeError(-1, "expected a JSON array", nil)
	}

	containers := make([]domain.InspectedContainer, 0, len(records))
	for i, raw := range records {
		c, err := decodeInspectRecord(i, raw)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	return containers, nil
}

func decodeInspectRecord(index int, raw json.RawMessage) (domain.InspectedContainer, error) {
	var rec inspectRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "invalid record", err)
	}
	if rec.Name == nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "missing required field Name", nil)
	}
	if rec.NetworkSettings == nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "missing required field NetworkSettings", nil)
	}

	ports, err := objectEntries(rec.NetworkSettings.Ports)
	if err != nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "invalid NetworkSettings.Ports", err)
	}
	networks, err := objectEntries(rec.NetworkSettings.Networks)
	if err != nil {
		return domain.InspectedContainer{}, NewDecodeError(index, "invalid NetworkSettings.Networks", err)
	}

	c := domain.InspectedContainer{
		ID:       rec.ID,
		Name:     *rec.Name,
		Ports:    make([]domain.PortBinding, 0, len(ports)),
		Networks: make([]domain.Network, 0, len(networks)),
	}
	for _, p := range ports {
		c.Ports = append(c.Ports, portBinding(nat.Port(p.Key)))
	}
	for _, n := range networks {
		var ep endpointRecord
		if !isNull(n.Value) {
			if err := json.Unmarshal(n.Value, &ep); err != nil {
				return domain.InspectedContainer{}, NewDecodeError(index, fmt.Sprintf("invalid network %q", n.Key), err)
			}
		}
		c.Networks = append(c.Networks, domain.Network{Name: n.Key, IPAddress: ep.IPAddress})
	}
	return c, nil
}

func portBinding(p nat.Port) domain.PortBinding {
	return domain.PortBinding{Port: p.Port(), Protocol: p.Proto()}
}

// objectEntries walks a JSON object and returns its members in document
// order. A missing or null value yields no entries.
func objectEntries(raw json.RawMessage) ([]rawEntry, error) {
	if isNull(raw) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var entries []rawEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		entries = append(entries, rawEntry{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
