package catalog

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"

	"github.com/datawhale/worksim/internal/generation"
)

// roleMap holds department-scoped job titles. Departments without an
// entry draw from the flattened pool.
var roleMap = map[string][]string{
	"Engineering": {
		"Backend Developer",
		"Frontend Developer",
		"DevOps Engineer",
		"QA Analyst",
		"Platform Engineer",
		"Mobile Developer",
	},
	"Marketing": {
		"SEO Specialist",
		"Content Strategist",
		"Growth Analyst",
		"Marketing Manager",
		"Campaign Manager",
	},
	"Sales": {
		"Account Executive",
		"Business Development Rep",
		"Sales Manager",
		"Sales Operations Analyst",
	},
	"Product": {
		"Product Manager",
		"Product Designer",
		"Technical Product Manager",
		"UX Researcher",
	},
	"HR": {
		"Recruiter",
		"HR Coordinator",
		"People Operations Manager",
		"Talent Partner",
	},
	"Finance": {
		"Financial Analyst",
		"Accountant",
		"Finance Manager",
		"Revenue Operations Analyst",
	},
	"Customer Success": {
		"Customer Success Manager",
		"Onboarding Specialist",
		"Support Analyst",
		"Account Manager",
	},
	"Operations": {
		"Operations Manager",
		"Business Operations Analyst",
		"Program Manager",
	},
}

// allRoles is the flattened pool in a stable order, used when a
// department has no dedicated titles.
var allRoles = flattenRoles()

func flattenRoles() []string {
	keys := make([]string, 0, len(roleMap))
	for k := range roleMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var roles []string
	for _, k := range keys {
		roles = append(roles, roleMap[k]...)
	}
	return roles
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Christopher", "Karen", "Charles",
	"Lisa", "Daniel", "Nancy", "Matthew", "Betty", "Anthony", "Sandra",
	"Mark", "Margaret", "Donald", "Ashley", "Steven", "Kimberly", "Andrew",
	"Emily", "Paul", "Donna", "Joshua", "Michelle", "Kenneth", "Carol",
	"Kevin", "Amanda", "Brian", "Melissa", "George", "Deborah", "Timothy",
	"Stephanie", "Ronald", "Rebecca", "Jason", "Sharon", "Edward", "Laura",
	"Jeffrey", "Cynthia", "Ryan", "Amy", "Jacob", "Kathleen", "Gary",
	"Angela", "Nicholas", "Shirley", "Eric", "Brenda", "Jonathan", "Emma",
	"Stephen", "Anna", "Larry", "Pamela", "Justin", "Nicole", "Scott",
	"Samantha", "Brandon", "Katherine", "Benjamin", "Christine", "Samuel",
	"Helen", "Gregory", "Debra", "Alexander", "Rachel", "Patrick", "Carolyn",
	"Frank", "Janet", "Raymond", "Maria", "Jack", "Olivia", "Dennis",
	"Heather", "Jerry", "Diane",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	"Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
	"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz",
	"Parker", "Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris",
	"Morales", "Murphy", "Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan",
	"Cooper", "Peterson", "Bailey", "Reed", "Kelly", "Howard", "Ramos",
	"Kim", "Cox", "Ward", "Richardson", "Watson", "Brooks", "Chavez",
	"Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz", "Hughes",
	"Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers", "Long",
	"Ross", "Foster", "Jimenez",
}

// emailTLDs are the domain extensions appended to the cleaned company
// name when deriving an address.
var emailTLDs = []string{".com", ".io", ".co", ".ai", ".tech"}

var nonLetter = regexp.MustCompile(`[^a-zA-Z]`)

// Profiles synthesizes person identities from the static name pools. It
// owns its own random stream so profile draws never disturb the
// generation stream; the same seed yields the same identity sequence.
type Profiles struct {
	rng *rand.Rand
}

// NewProfiles creates a profile source seeded independently of the
// generation stream.
func NewProfiles(seed int64) *Profiles {
	return &Profiles{rng: rand.New(rand.NewSource(seed))}
}

// Profile returns a name, a company-aligned email and a
// department-appropriate role. Emails are plain derivations; uniqueness
// is the caller's concern.
func (p *Profiles) Profile(company, department string) (generation.Profile, error) {
	first := firstNames[p.rng.Intn(len(firstNames))]
	last := lastNames[p.rng.Intn(len(lastNames))]
	name := first + " " + last

	roles, ok := roleMap[department]
	if !ok {
		roles = allRoles
	}

	return generation.Profile{
		Name:  name,
		Email: emailFromName(p.rng, name, company),
		Role:  roles[p.rng.Intn(len(roles))],
	}, nil
}

// emailFromName derives first.last@company<tld> with non-letters
// stripped from the domain part.
func emailFromName(rng *rand.Rand, name, company string) string {
	clean := strings.ToLower(strings.TrimSpace(nonLetter.ReplaceAllString(name, " ")))
	parts := strings.Fields(clean)

	local := clean
	if len(parts) >= 2 {
		local = parts[0] + "." + parts[len(parts)-1]
	} else if len(parts) == 1 {
		local = parts[0]
	}

	domain := strings.ToLower(nonLetter.ReplaceAllString(company, ""))
	tld := emailTLDs[rng.Intn(len(emailTLDs))]
	return local + "@" + domain + tld
}
