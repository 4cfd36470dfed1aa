package summary

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/Harrison-Blair/tabletop-notetaker/internal/transcript"
)

func meetingSegments() []transcript.Segment {
	return []transcript.Segment{
		{Speaker: "Alice", Text: "Hello everyone, let's start the meeting."},
		{Speaker: "Bob", Text: "I think we should discuss the new project timeline."},
		{Speaker: "Alice", Text: "Good idea. We need to finish by next Friday."},
	}
}

func TestExtractMeetingScenario(t *testing.T) {
	data := Extract(meetingSegments())

	if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(data.Speakers, want) {
		t.Errorf("Speakers = %v, want %v", data.Speakers, want)
	}
	if data.TotalSegments != 3 {
		t.Errorf("TotalSegments = %d, want 3", data.TotalSegments)
	}

	if len(data.ActionItems) != 2 {
		t.Fatalf("ActionItems = %v, want 2 items", data.ActionItems)
	}
	if !strings.Contains(data.ActionItems[0], "Bob:") || !strings.Contains(data.ActionItems[0], "should") {
		t.Errorf("first action item = %q, want Bob's 'should' line", data.ActionItems[0])
	}
	if !strings.Contains(data.ActionItems[1], "Alice:") || !strings.Contains(data.ActionItems[1], "need to") {
		t.Errorf("second action item = %q, want Alice's 'need to' line", data.ActionItems[1])
	}
}

func TestExtractSpeakers(t *testing.T) {
	tests := []struct {
		name     string
		segments []transcript.Segment
		want     []string
	}{
		{
			name: "first appearance order, no duplicates",
			segments: []transcript.Segment{
				{Speaker: "Carol", Text: "First remark here."},
				{Speaker: "Dave", Text: "Second remark here."},
				{Speaker: "Carol", Text: "Third remark here."},
			},
			want: []string{"Carol", "Dave"},
		},
		{
			name: "empty text segments excluded",
			segments: []transcript.Segment{
				{Speaker: "Carol", Text: "   "},
				{Speaker: "Dave", Text: "Only Dave said anything."},
			},
			want: []string{"Dave"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Extract(tt.segments)
			if !reflect.DeepEqual(data.Speakers, tt.want) {
				t.Errorf("Speakers = %v, want %v", data.Speakers, tt.want)
			}
		})
	}
}

func TestExtractCaps(t *testing.T) {
	var segments []transcript.Segment
	for i := 0; i < 30; i++ {
		segments = append(segments, transcript.Segment{
			Speaker: "Speaker 1",
			Text:    fmt.Sprintf("We should review the item number %d in great detail today. Another substantial sentence follows the first one here.", i),
		})
	}

	data := Extract(segments)

	if len(data.KeyPoints) > maxKeyPoints {
		t.Errorf("len(KeyPoints) = %d, want <= %d", len(data.KeyPoints), maxKeyPoints)
	}
	if len(data.ActionItems) > maxActionItems {
		t.Errorf("len(ActionItems) = %d, want <= %d", len(data.ActionItems), maxActionItems)
	}
	if len(data.Keywords) > maxKeywords {
		t.Errorf("len(Keywords) = %d, want <= %d", len(data.Keywords), maxKeywords)
	}

	// Summary holds at most three sentences drawn in original order.
	if data.SummaryText == "" {
		t.Error("SummaryText should not be empty")
	}
	if !strings.HasPrefix(data.SummaryText, "We should review the item number 0") {
		t.Errorf("SummaryText should start with the first substantial sentence, got %q", data.SummaryText)
	}
}

func TestExtractKeywords(t *testing.T) {
	segments := []transcript.Segment{
		{Speaker: "A", Text: "budget budget budget timeline timeline review once"},
	}

	data := Extract(segments)

	if want := []string{"budget", "timeline"}; !reflect.DeepEqual(data.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", data.Keywords, want)
	}
}

func TestExtractKeywordsTieOrder(t *testing.T) {
	// zulu and alpha both occur twice; first occurrence wins the tie.
	segments := []transcript.Segment{
		{Speaker: "A", Text: "zulu alpha zulu alpha"},
	}

	data := Extract(segments)

	if want := []string{"zulu", "alpha"}; !reflect.DeepEqual(data.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", data.Keywords, want)
	}
}

func TestExtractKeywordsFiltering(t *testing.T) {
	segments := []transcript.Segment{
		// "the" is a stop word, "cat" is too short, both repeat.
		{Speaker: "A", Text: "the the cat cat project project"},
	}

	data := Extract(segments)

	if want := []string{"project"}; !reflect.DeepEqual(data.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", data.Keywords, want)
	}
}

func TestExtractIsPure(t *testing.T) {
	segments := meetingSegments()

	first := Extract(segments)
	second := Extract(segments)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	data := Extract(nil)

	if data.TotalSegments != 0 {
		t.Errorf("TotalSegments = %d, want 0", data.TotalSegments)
	}
	if len(data.Speakers) != 0 || len(data.KeyPoints) != 0 || len(data.ActionItems) != 0 || len(data.Keywords) != 0 {
		t.Errorf("expected empty extraction, got %+v", data)
	}
	if data.SummaryText != "" {
		t.Errorf("SummaryText = %q, want empty", data.SummaryText)
	}
}
