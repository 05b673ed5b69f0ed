package quiz

// QuestionID identifies a quiz question. IDs are stable: 1..11.
type QuestionID int

const (
	SkinTone         QuestionID = 1
	HairColor        QuestionID = 2
	EyeColor         QuestionID = 3
	SunReaction      QuestionID = 4
	VeinColor        QuestionID = 5
	ClothingColors   QuestionID = 6
	Jewelry          QuestionID = 7
	ColorChange      QuestionID = 8
	ColorFamily      QuestionID = 9
	SeasonPreference QuestionID = 10
	Considerations   QuestionID = 11
)

// Kind is how a question is answered.
type Kind string

const (
	KindSingleChoice Kind = "single-choice"
	KindText         Kind = "text"
)

// Option is one allowed answer value for a single-choice question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Image string `json:"image,omitempty"`
}

// Question is a single quiz question.
type Question struct {
	ID       QuestionID `json:"id"`
	Title    string     `json:"title"`
	Label    string     `json:"label"`
	Kind     Kind       `json:"type"`
	Required bool       `json:"required"`
	Options  []Option   `json:"options,omitempty"`
}

// Option returns the option with the given value. The second result is
// false for unrecognized values and for text questions.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

const imageBase = "https://k6hrqrxuu8obbfwn.public.blob.vercel-storage.com/temp/"

// questions is the quiz in display order.
var questions = []Question{
	{
		ID:       SkinTone,
		Title:    "Which of these skin tones looks most like yours?",
		Label:    "Skin tone",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "fair-pink", Label: "Fair with pink undertone", Image: imageBase + "752f7a1c-f143-4c82-aac4-3f8879e9663e.jpg"},
			{Value: "light-neutral", Label: "Light neutral", Image: imageBase + "1567f4f4-4292-4721-9ab7-9ab54004fa34.jpg"},
			{Value: "medium-olive", Label: "Medium olive", Image: imageBase + "1f8ffa04-bf0c-47c7-ab71-0c35b5977f45.jpg"},
			{Value: "warm-tan", Label: "Warm tan", Image: imageBase + "f02e4927-1b7f-423e-b5c7-6966ca96fe6f.jpg"},
			{Value: "deep-brown", Label: "Deep brown", Image: imageBase + "1883657b-d3d5-4ece-a2e2-4c9a76093d38.jpg"},
		},
	},
	{
		ID:       HairColor,
		Title:    "What's your natural hair color?",
		Label:    "Natural hair color",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "blonde", Label: "Blonde", Image: imageBase + "629728ca-74ce-4e60-9422-5f5dc640747e.jpg"},
			{Value: "light-brown", Label: "Light Brown", Image: imageBase + "9320f488-f8af-45d2-b4b1-da475e55a5bc.jpg"},
			{Value: "dark-brown", Label: "Dark Brown", Image: imageBase + "77997bf3-ad5f-445e-8384-663e874b10d1.jpg"},
			{Value: "black", Label: "Black", Image: imageBase + "00988a43-5b11-400d-8f85-920cc3a54202.jpg"},
			{Value: "red", Label: "Red", Image: imageBase + "1cb002ac-1768-49d9-bc45-5d19acc7c990.jpg"},
		},
	},
	{
		ID:       EyeColor,
		Title:    "What color are your eyes?",
		Label:    "Eye color",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "blue", Label: "Blue", Image: imageBase + "ab98b329-3838-416b-8b8b-7b073a8f9e64.jpg"},
			{Value: "green", Label: "Green", Image: imageBase + "abe5c174-2c62-4549-913a-05000fc6c6b8.jpg"},
			{Value: "light-brown", Label: "Light Brown", Image: imageBase + "09bd74e7-c2bd-4292-b0a7-f2e97f05db42.jpg"},
			{Value: "dark-brown", Label: "Dark Brown", Image: imageBase + "9b78f349-25be-4056-8be5-8b4503218e93.jpg"},
			{Value: "black", Label: "Black", Image: imageBase + "e04e4804-d74b-4b4b-9ab5-4db3774debf4.jpg"},
		},
	},
	{
		ID:       SunReaction,
		Title:    "In the sun, your skin usually…",
		Label:    "Sun reaction",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "burns-peels", Label: "Burns & peels"},
			{Value: "tans-slightly", Label: "Tans slightly"},
			{Value: "tans-easily", Label: "Tans easily"},
			{Value: "very-tanned", Label: "Gets very tanned"},
		},
	},
	{
		ID:       VeinColor,
		Title:    "Look at your wrist veins. They appear mostly…",
		Label:    "Vein color",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "blue-purple", Label: "Blue / Purple"},
			{Value: "green", Label: "Green"},
			{Value: "hard-to-tell", Label: "Hard to tell / In-between"},
		},
	},
	{
		ID:       ClothingColors,
		Title:    "Which clothing colors make you look fresher or more radiant?",
		Label:    "Best clothing colors",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "soft-pastels", Label: "Soft Pastels Tones", Image: imageBase + "944c9fee-103c-41a7-afcb-2db9149d7223.jpg"},
			{Value: "warm-tones", Label: "Warm Tones", Image: imageBase + "f829330b-5221-432d-bf0c-240e8fee4e08.jpg"},
			{Value: "deep-rich", Label: "Deep Rich Tones", Image: imageBase + "072071ee-56fa-423d-bec2-e43dd8ccdf66.jpg"},
			{Value: "bright-vivid", Label: "Bright Vivid Tones", Image: imageBase + "549b08b1-ed7e-44b9-bb3d-ca4e69e2c98c.jpg"},
			{Value: "cool-tones", Label: "Cool Tones", Image: imageBase + "7ab13867-c473-47fc-a58b-e564523a5f28.jpg"},
		},
	},
	{
		ID:       Jewelry,
		Title:    "Which jewelry tone suits you best?",
		Label:    "Best jewelry tone",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "gold", Label: "Gold", Image: imageBase + "0d21a0a9-b931-4fdd-a51f-93caab6d25ca.jpg"},
			{Value: "silver", Label: "Silver", Image: imageBase + "93a7d465-e421-45dd-8c55-1e32fbbd493a.jpg"},
			{Value: "mixed", Label: "Mixed metals", Image: imageBase + "60025efa-5921-472b-91d6-84530e6e7a73.jpg"},
		},
	},
	{
		ID:       ColorChange,
		Title:    "What type of color change would you like to try right now?",
		Label:    "Desired color change",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "subtle-highlights", Label: "Subtle Highlights", Image: imageBase + "2c5157b0-4b9e-4fd1-9d73-269733097ca1.jpg"},
			{Value: "full-color-change", Label: "Full Color Change", Image: imageBase + "e752caa1-92f1-41f6-8c5e-c1bb264f7670.jpg"},
			{Value: "darker-glossy", Label: "Darker Glossy Enhancement", Image: imageBase + "dd23dcbf-0853-425a-950f-a9968f1fbd6d.jpg"},
		},
	},
	{
		ID:       ColorFamily,
		Title:    "Pick one color family you're curious to try:",
		Label:    "Curious color family",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "beige-golden", Label: "Beige/Golden Blonde", Image: imageBase + "c58a19c0-97ec-4d1f-ab03-114d282c9ba4.jpg"},
			{Value: "copper-ginger", Label: "Copper/Soft Ginger", Image: imageBase + "23186791-0067-4630-ba44-b2f9fb2112e0.jpg"},
			{Value: "chocolate-brown", Label: "Chocolate Brown", Image: imageBase + "b6247dea-4cf1-4e62-9be6-f15ae20c62b1.jpg"},
			{Value: "blue-black", Label: "Blue-Black/Cool Black", Image: imageBase + "218d9303-e2e3-457f-8e3c-42faa3db0345.jpg"},
		},
	},
	{
		ID:       SeasonPreference,
		Title:    "If your color vibe were a season, which one would it be?",
		Label:    "Season preference",
		Kind:     KindSingleChoice,
		Required: true,
		Options: []Option{
			{Value: "spring", Label: "Spring", Image: imageBase + "26af95c0-c7b0-497f-964b-9c5f3ba190a8.jpg"},
			{Value: "summer", Label: "Summer", Image: imageBase + "2918a77f-789e-42ff-91b4-24e30876d887.jpg"},
			{Value: "autumn", Label: "Autumn", Image: imageBase + "cef8ff69-7a87-44d2-b452-08220b4435f5.jpg"},
			{Value: "winter", Label: "Winter", Image: imageBase + "2bce4c1e-5fcd-4bee-bad6-0a22f363194f.jpg"},
		},
	},
	{
		ID:    Considerations,
		Title: "Anything we should consider?",
		Label: "Additional considerations",
		Kind:  KindText,
	},
}

// questionIndex maps IDs to positions in questions.
var questionIndex = func() map[QuestionID]int {
	m := make(map[QuestionID]int, len(questions))
	for i, q := range questions {
		m[q.ID] = i
	}
	return m
}()

// Questions returns the quiz in display order. The returned slice is a copy.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Lookup returns the question with the given ID.
func Lookup(id QuestionID) (Question, bool) {
	i, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return questions[i], true
}

// Valid reports whether id names a question in the quiz.
func (id QuestionID) Valid() bool {
	_, ok := questionIndex[id]
	return ok
}
