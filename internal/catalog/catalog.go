// Package catalog provides descriptive reference information for mudras:
// what each gesture means and how it is used in classical Indian dance.
// The catalog is a superset of the detectable set; some entries exist only
// for the dashboard gallery.
package catalog

import "strings"

// Info holds the descriptive metadata for one mudra.
type Info struct {
	Description string `json:"description"`
	Meaning     string `json:"meaning"`
	Usage       string `json:"usage"`
	Image       string `json:"image,omitempty"`
}

// entry pairs a mudra name with its info, preserving catalog order.
type entry struct {
	name string
	info Info
}

var entries = []entry{
	{"Pataka Mudra", Info{
		Description: "The flag mudra. All fingers are extended and held together with the thumb tucked in. Represents flags, wings, clouds, forests, and night.",
		Meaning:     "Flag",
		Usage:       "Used to depict objects like clouds, forest, forbidding, and waves in classical dance.",
		Image:       "Pataka.jpg",
	}},
	{"Tripataka Mudra", Info{
		Description: "Three parts of a flag. Index, middle, and pinky fingers are extended while the ring finger is bent. Represents crown, tree, flame, and thunderbolt.",
		Meaning:     "Three parts of a flag",
		Usage:       "Used to show a crown, trees, flames, and various emotional expressions.",
		Image:       "Tripataka.jpg",
	}},
	{"Mayura Mudra", Info{
		Description: "The peacock mudra. Similar to Tripataka but with thumb touching the bent ring finger. Symbolizes the beautiful peacock and grace.",
		Meaning:     "Peacock",
		Usage:       "Depicts peacocks, applying tilak, and expressing beauty and grace.",
		Image:       "Mayura.jpg",
	}},
	{"Ardha Chandra Mudra", Info{
		Description: "The half-moon mudra. All fingers are extended with thumb at an angle. Represents the crescent moon, hands, and sacred objects.",
		Meaning:     "Half Moon",
		Usage:       "Used to depict the moon, hand gestures, and objects held in the hand.",
		Image:       "Ardhachandra.jpg",
	}},
	{"Arala Mudra", Info{
		Description: "The bent mudra. Index finger is bent while other fingers are extended. Represents drinking poison, consuming nectar, and tasting.",
		Meaning:     "Bent",
		Usage:       "Used for actions like drinking, tasting, and applying poison.",
		Image:       "Arala.jpg",
	}},
	{"Suchi Mudra", Info{
		Description: "The needle mudra. Only the index finger is extended upward while others are folded. Represents pointing, number one, and divine figures.",
		Meaning:     "Needle/Index",
		Usage:       "Used for pointing directions, showing oneness, and depicting Lord Shiva.",
		Image:       "Suchi.jpg",
	}},
	{"Mukula Mudra", Info{
		Description: "The bud mudra. All fingertips are brought together forming a bud shape. Represents flowers, eating, and offering.",
		Meaning:     "Bud",
		Usage:       "Used to depict eating, offering flowers, and lotus buds.",
		Image:       "Mukula.jpg",
	}},
	{"Musthi Mudra", Info{
		Description: "The fist mudra. All fingers are clenched forming a fist. Represents strength, holding objects, and firmness.",
		Meaning:     "Fist",
		Usage:       "Used to show strength, grasping objects, and determination.",
		Image:       "Musti.jpg",
	}},
	{"Shikharam Mudra", Info{
		Description: "The peak mudra. All fingers clenched with thumb extended upward. Represents Shiva's form, lingam, and mountain peaks.",
		Meaning:     "Peak/Summit",
		Usage:       "Used to depict Lord Shiva, lingam, and towering structures.",
		Image:       "Sikharam.jpg",
	}},
	{"Kapitha Mudra", Info{
		Description: "The wood apple mudra. Index finger bent with thumb touching, other fingers folded. Represents Lakshmi, Saraswati, and holding objects.",
		Meaning:     "Wood Apple",
		Usage:       "Used to depict goddesses Lakshmi and Saraswati, and holding small objects.",
		Image:       "Kapittha.jpg",
	}},
	{"Katakamukha Mudra", Info{
		Description: "The opening in a bracelet. Ring and pinky extended, index and middle bent with thumb. Represents picking flowers, tying knots, and arrows.",
		Meaning:     "Opening in bracelet",
		Usage:       "Used for plucking flowers, stringing garlands, and holding arrows.",
		Image:       "Katakamukha.jpg",
	}},
	{"Chandrakala Mudra", Info{
		Description: "The moon's digit. Index and thumb extended while others are folded. Represents the crescent moon and delicate beauty.",
		Meaning:     "Moon's digit",
		Usage:       "Used to depict the crescent moon and gentle expressions.",
		Image:       "Chandrakala.jpg",
	}},
	{"Hamsasya Mudra", Info{
		Description: "The swan's beak. Thumb and index tips touch while other fingers are extended. Represents swan, picking up objects, and delicacy.",
		Meaning:     "Swan's beak",
		Usage:       "Used to show swans, picking flowers, and painting.",
		Image:       "Hamsasya.jpg",
	}},
	{"Hamsapaksha Mudra", Info{
		Description: "The swan's wing. Fingers arranged to resemble a swan's wing. Represents wings, flying, and graceful movement.",
		Meaning:     "Swan's wing",
		Usage:       "Used to depict wings, birds in flight, and graceful movements.",
		Image:       "Hamsapaksa.jpg",
	}},
	{"Ardhapataka Mudra", Info{
		Description: "Half flag mudra. Index and middle fingers extended, ring and pinky bent. Represents rivers, roads, and boundaries.",
		Meaning:     "Half flag",
		Usage:       "Used to show rivers, roads, and dividing boundaries.",
		Image:       "Ardhapataka.jpg",
	}},
	{"Kartari Mukham Mudra", Info{
		Description: "The scissors mudra. Index and middle fingers extended like scissors. Represents separation, lightning, and sharp objects.",
		Meaning:     "Scissors face",
		Usage:       "Used to depict scissors, lightning, and the forked tongue of a serpent.",
		Image:       "Kartarimukha.jpg",
	}},
	{"Simhamukha Mudra", Info{
		Description: "The lion's face. Fingers arranged to resemble a lion's face. Represents the fierce lion and courage.",
		Meaning:     "Lion's face",
		Usage:       "Used to depict the powerful lion and fierce expressions.",
		Image:       "Simhamukha.jpg",
	}},
	{"Bhramara Mudra", Info{
		Description: "The bee mudra. Thumb and middle finger touch while index is curled. Represents the humming bee and delicate movements.",
		Meaning:     "Bee",
		Usage:       "Used to show bees, insects, and gentle circular movements.",
		Image:       "Bharma.jpg",
	}},
	{"Sarpashirsha Mudra", Info{
		Description: "The serpent's head. All fingers extended and brought together. Represents the cobra's hood and serpent movements.",
		Meaning:     "Serpent's head",
		Usage:       "Used to depict snakes, serpent deities, and snake charmers.",
		Image:       "Sarpashirsa.jpg",
	}},
	{"Mrigasheersha Mudra", Info{
		Description: "The deer's head. Thumb and pinky extended while others are folded. Represents deer, calling someone, and gentle animals.",
		Meaning:     "Deer's head",
		Usage:       "Used to show deer, calling gestures, and feminine beauty.",
		Image:       "Mrugashirsha-Hasta.jpg",
	}},
	{"Padmakosha Mudra", Info{
		Description: "The lotus bud. Fingers curved forming a lotus bud shape. Represents the unopened lotus, fruits, and fullness.",
		Meaning:     "Lotus bud",
		Usage:       "Used to depict lotus buds, round fruits, and bells.",
		Image:       "Padmakosa.jpg",
	}},
	{"Alapadma Mudra", Info{
		Description: "The blooming lotus. Fingers spread apart like a blooming flower. Represents the fully opened lotus and expansion.",
		Meaning:     "Blooming lotus",
		Usage:       "Used to show blooming flowers, sunrise, and opening gestures.",
		Image:       "Alapadma.jpg",
	}},
	{"Chatura Mudra", Info{
		Description: "The square mudra. Fingers held straight and close together with thumb tucked. Represents stability, four directions, and balance.",
		Meaning:     "Square/Four",
		Usage:       "Used to depict the four directions, square shapes, and balanced movements.",
		Image:       "Chautra.jpg",
	}},
	{"Kangulashya Mudra", Info{
		Description: "The finger nail mudra. Ring finger bent while others are extended. Represents specific gestures and delicate movements.",
		Meaning:     "Fingernail",
		Usage:       "Used for specific gestures and delicate artistic expressions.",
		Image:       "Kangula.jpg",
	}},
	{"Tamrachuda Mudra", Info{
		Description: "The rooster mudra. Index half-bent with thumb touching other fingers. Represents the rooster and morning announcements.",
		Meaning:     "Rooster",
		Usage:       "Used to depict roosters, cocks, and dawn.",
		Image:       "Tamracuda.jpg",
	}},
	{"Trishula Mudra", Info{
		Description: "The trident mudra. Index, middle, and ring fingers extended. Represents Lord Shiva's trident and power.",
		Meaning:     "Trident",
		Usage:       "Used to depict Lord Shiva's weapon and divine power.",
		Image:       "Trisula.jpg",
	}},
	{"Shuka Tundam Mudra", Info{
		Description: "The parrot's beak. Middle and pinky extended, others bent. Represents the parrot and bird calls.",
		Meaning:     "Parrot's beak",
		Usage:       "Used to show parrots, birds, and chirping sounds.",
		Image:       "Sukatunda.jpg",
	}},
}

// Lookup returns the info for a mudra name. The name is normalized by
// stripping a trailing " Detected" suffix. An exact match is tried first,
// then a substring match in either direction. Unknown names get a default
// entry so the dashboard always has something to show.
func Lookup(name string) Info {
	clean := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(name), " Detected"))

	for _, e := range entries {
		if e.name == clean {
			return e.info
		}
	}

	for _, e := range entries {
		if strings.Contains(e.name, clean) || strings.Contains(clean, e.name) {
			return e.info
		}
	}

	return Info{
		Description: "No description available for this mudra.",
		Meaning:     clean,
		Usage:       "Classical Indian dance gesture.",
	}
}

// Names returns all catalog entry names in catalog order.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Len returns the number of catalog entries.
func Len() int {
	return len(entries)
}
