// Package compare holds the static write-up shown next to the counters: the
// pros and cons of each authoring style and the lifecycle equivalence table.
package compare

// Section lists the advantages and disadvantages of one authoring style.
type Section struct {
	Title string
	Pros  []string
	Cons  []string
}

// Row pairs a lifecycle concept in the object style with its hook equivalent.
type Row struct {
	Object  string
	Hook    string
	Purpose string
}

// Heading and Subheading title the page.
const (
	Heading    = "Component Comparison Analysis"
	Subheading = "Class Components vs Functional Components with Hooks"
)

// Sections is the pros/cons write-up, object style first.
var Sections = []Section{
	{
		Title: "Class Components",
		Pros: []string{
			"Established pattern with extensive documentation",
			"Clear lifecycle method structure",
			"Better for complex state logic (historically)",
			"Easier for developers coming from OOP backgrounds",
		},
		Cons: []string{
			"More boilerplate code",
			"Manual method binding required",
			"this keyword can be confusing",
			"Harder to split into smaller components",
		},
	},
	{
		Title: "Functional Components with Hooks",
		Pros: []string{
			"Less code and cleaner syntax",
			"No binding issues",
			"Easier to test and reuse logic",
			"Better performance with optimized hooks",
		},
		Cons: []string{
			"Learning curve for hooks",
			"More abstraction for lifecycle operations",
			"Potential for misuse of useEffect",
			"Requires understanding of closures",
		},
	},
}

// LifecycleHeaders are the column titles of the lifecycle table.
var LifecycleHeaders = []string{"Class Component", "Functional Component", "Purpose"}

// Lifecycle maps each lifecycle step to its hook equivalent.
var Lifecycle = []Row{
	{"constructor", "useState", "Initialize state"},
	{"componentDidMount", "useEffect(() => {}, [])", "Run after component mounts"},
	{"componentDidUpdate", "useEffect(() => {})", "Run after updates"},
	{"componentWillUnmount", "useEffect return function", "Cleanup before unmount"},
	{"this.setState", "setState function", "Update state"},
}
