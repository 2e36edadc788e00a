package content

var navLinks = []NavLink{
	{Label: "Menu", Href: "#menu"},
	{Label: "Story", Href: "#story"},
	{Label: "Gallery", Href: "#gallery"},
	{Label: "Reserve", Href: "#reserve"},
}

var testimonials = []Testimonial{
	{
		Quote:  "Best ramen I've had outside of Japan. The tonkotsu is otherworldly.",
		Author: "Sarah M., Google ★★★★★",
	},
	{
		Quote:  "We come here every Friday. The spicy miso is dangerously good.",
		Author: "James T., Yelp ★★★★★",
	},
	{
		Quote:  "Atmosphere is perfect — dark, moody, intimate. The gyoza deserve their own award.",
		Author: "Lisa K., Google ★★★★★",
	},
}

var gallery = []GalleryEntry{
	{Label: "The Broth", Image: "/images/gallery-broth.jpg"},
	{Label: "Hand-cut Noodles", Image: "/images/gallery-noodles.jpg"},
	{Label: "The Bowl", Image: "/images/gallery-bowl.jpg"},
	{Label: "Late Night Fitzroy", Image: "/images/gallery-exterior.jpg"},
	{Label: "Karaage", Image: "/images/gallery-karaage.jpg"},
	{Label: "Yuzu Bar", Image: "/images/gallery-bar.jpg"},
}

var stats = []Stat{
	{Value: "48hrs", Caption: "broth cook time"},
	{Value: "100% fresh", Caption: "daily noodles"},
}

var timeSlots = []string{"5:30pm", "6:00pm", "6:30pm", "7:00pm", "7:30pm", "8:00pm", "8:30pm"}

var partySizes = []string{"1-2", "3-4", "5-6", "7+"}

// Story is the "Our Story" copy in markdown.
const Story = `Hana Ramen was born from a single obsession: **the perfect bowl**.

Every broth is simmered for 48 hours. Every noodle hand-cut each morning. Every
topping sourced from Melbourne's finest producers.

We opened our doors in Fitzroy because this neighbourhood deserves food that
doesn't compromise.
`

var venue = Venue{
	Name:    "Hana Ramen",
	Tagline: "Ramen. Refined.",
	Street:  "234 Smith Street",
	Suburb:  "Fitzroy",
	Address: "234 Smith Street, Fitzroy VIC 3065",
	Phone:   "(03) 9417 2388",
	ABN:     "72 891 234 567",
	Founded: 2021,
	Hours: []OpeningHours{
		{Days: "Tue–Thu", Hours: "5:30pm – 9:30pm"},
		{Days: "Fri–Sat", Hours: "5:00pm – 10:30pm"},
		{Days: "Sun", Hours: "5:00pm – 9:00pm"},
		{Days: "Mon", Hours: "Closed"},
	},
	Instagram: "#",
	Facebook:  "#",
}

// NavLinks returns the header and footer anchor links.
func NavLinks() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

// Testimonials returns the guest reviews in display order.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Gallery returns the gallery cards in display order.
func Gallery() []GalleryEntry {
	out := make([]GalleryEntry, len(gallery))
	copy(out, gallery)
	return out
}

// Stats returns the story highlight cards.
func Stats() []Stat {
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}

// TimeSlots returns the bookable seating times.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// PartySizes returns the party size buckets.
func PartySizes() []string {
	out := make([]string, len(partySizes))
	copy(out, partySizes)
	return out
}

// VenueInfo returns the restaurant's address, phone and hours.
func VenueInfo() Venue {
	v := venue
	v.Hours = make([]OpeningHours, len(venue.Hours))
	copy(v.Hours, venue.Hours)
	return v
}
