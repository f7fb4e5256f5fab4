package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Section names as they appear in the snapshot.
const (
	SectionMetadata        = "metadata"
	SectionCreativeInsight = "creative_insight"
	SectionCustomInfo      = "custom_info"
)

type wireDocument struct {
	Videos map[string]json.RawMessage `json:"videos"`
}

type wireVideo struct {
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	CreativeInsight json.RawMessage `json:"creative_insight,omitempty"`
	CustomInfo      json.RawMessage `json:"custom_info,omitempty"`
}

type wireMetadata struct {
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags,omitempty"`
	ViewCount    flexCount `json:"view_count"`
	LikeCount    flexCount `json:"like_count"`
	CommentCount flexCount `json:"comment_count"`
}

type wireInsight struct {
	Creators []wireCreator `json:"creators,omitempty"`
	Themes   []string      `json:"themes,omitempty"`
}

// wireCreator accepts {"name": "..."} or a bare string.
type wireCreator struct {
	Name string `json:"name"`
}

func (c *wireCreator) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.Name)
	}
	type plain wireCreator
	return json.Unmarshal(data, (*plain)(c))
}

type wireCustomInfo struct {
	ManualTitle            string   `json:"manual_title,omitempty"`
	ManualArtist           string   `json:"manual_artist,omitempty"`
	JapanesePronunciations []string `json:"japanese_pronunciations,omitempty"`
	ArtistPronunciations   []string `json:"artist_pronunciations,omitempty"`
	SearchKeywords         []string `json:"search_keywords,omitempty"`
	LastEdited             string   `json:"last_edited,omitempty"`
	EditCount              int      `json:"edit_count,omitempty"`
}

// flexCount accepts a JSON number or a numeric string, as the YouTube Data
// API reports statistics as strings.
type flexCount int64

func (n *flexCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("count %q: %w", s, err)
		}
		*n = flexCount(v)
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = flexCount(v)
	return nil
}

// isAbsent reports whether a raw section is missing or null.
func isAbsent(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// isObject reports whether raw is a JSON object.
func isObject(raw []byte) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

// cleanList drops empty and whitespace-only entries.
func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
