package seed

import (
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type wardSeed struct {
	name        string
	number      int
	area        float64
	population  int
	description string
}

var wards = []wardSeed{
	{"Ward 1 - North", 1, 12.5, 25000, "Northern ward of Mahendragarh"},
	{"Ward 2 - Central", 2, 8.7, 32000, "Central ward of Mahendragarh"},
	{"Ward 3 - East", 3, 10.2, 28000, "Eastern ward of Mahendragarh"},
	{"Ward 4 - South", 4, 11.8, 30000, "Southern ward of Mahendragarh"},
	{"Ward 5 - West", 5, 9.5, 26000, "Western ward of Mahendragarh"},
}

type roadSeed struct {
	code             string
	name             string
	description      string
	wardNumber       int
	length           float64
	width            float64
	startPoint       string
	endPoint         string
	constructionYear int
	lastMaintenance  time.Time
	coordinates      string
}

var roads = []roadSeed{
	{
		code: "MG-R-001", name: "Gandhi Road", description: "Main road connecting central market to highway",
		wardNumber: 2, length: 3.5, width: 12, startPoint: "Central Market", endPoint: "Highway Junction",
		constructionYear: 2015, lastMaintenance: date(2022, time.January, 15),
		coordinates: `[{"lat":28.2846,"lng":76.1515},{"lat":28.285,"lng":76.155}]`,
	},
	{
		code: "MG-R-014", name: "Patel Road", description: "Connects northern residential area to city center",
		wardNumber: 1, length: 2.8, width: 10, startPoint: "North Entrance", endPoint: "City Center",
		constructionYear: 2018, lastMaintenance: date(2022, time.June, 20),
		coordinates: `[{"lat":28.292,"lng":76.152},{"lat":28.288,"lng":76.153}]`,
	},
	{
		code: "MG-R-022", name: "Station Road", description: "Road connecting railway station to eastern market",
		wardNumber: 3, length: 1.7, width: 8, startPoint: "Railway Station", endPoint: "Eastern Market",
		constructionYear: 2017, lastMaintenance: date(2021, time.November, 10),
		coordinates: `[{"lat":28.283,"lng":76.157},{"lat":28.284,"lng":76.161}]`,
	},
	{
		code: "MG-R-008", name: "Market Road", description: "Main market road with heavy commercial activity",
		wardNumber: 5, length: 1.2, width: 14, startPoint: "West Junction", endPoint: "Market Square",
		constructionYear: 2014, lastMaintenance: date(2022, time.March, 5),
		coordinates: `[{"lat":28.281,"lng":76.148},{"lat":28.2825,"lng":76.151}]`,
	},
	{
		code: "MG-R-036", name: "College Road", description: "Road connecting educational institutions",
		wardNumber: 4, length: 2.3, width: 11, startPoint: "University Campus", endPoint: "Technical College",
		constructionYear: 2019, lastMaintenance: date(2022, time.August, 15),
		coordinates: `[{"lat":28.278,"lng":76.153},{"lat":28.276,"lng":76.156}]`,
	},
}

type vendorSeed struct {
	name               string
	contactPerson      string
	phone              string
	email              string
	address            string
	registrationNumber string
	registrationDate   time.Time
	category           string
	performance        string
}

var vendors = []vendorSeed{
	{"Bharat Construction Ltd.", "Rajesh Kumar", "9876543210", "info@bharatconstruction.com", "123 Industrial Area, Mahendragarh", "VEN-2018-001", date(2018, time.March, 15), "Construction", domain.PerformanceGood},
	{"Highway Developers Inc.", "Priya Singh", "9876543211", "contact@highwaydev.com", "456 Main Road, Mahendragarh", "VEN-2019-008", date(2019, time.July, 22), "Road Construction", domain.PerformanceAverage},
	{"Roadways Solutions", "Vikram Patel", "9876543212", "info@roadwayssol.com", "789 Highway Junction, Mahendragarh", "VEN-2020-012", date(2020, time.January, 10), "Maintenance", domain.PerformanceGood},
	{"Bridge Builders Co.", "Anita Sharma", "9876543213", "contact@bridgebuilders.com", "234 River Road, Mahendragarh", "VEN-2017-005", date(2017, time.November, 30), "Bridge Construction", domain.PerformancePoor},
	{"Urban Infrastructure Ltd.", "Rahul Gupta", "9876543214", "info@urbaninfra.com", "567 City Center, Mahendragarh", "VEN-2021-019", date(2021, time.May, 18), "Urban Development", domain.PerformanceGood},
}

type projectSeed struct {
	code        string
	name        string
	roadCode    string
	vendorName  string
	projectType string
	wardNumber  int
	budget      float64
	start       time.Time
	end         time.Time
	status      string
	progress    int
	description string
	createdBy   string
}

var projects = []projectSeed{
	{
		code: "PRJ-2023-001", name: "Gandhi Road Reconstruction", roadCode: "MG-R-001", vendorName: "Bharat Construction Ltd.",
		projectType: domain.ProjectTypeNewConstruction, wardNumber: 2, budget: 2.4,
		start: date(2023, time.January, 15), end: date(2023, time.July, 15), status: domain.ProjectStatusCompleted, progress: 100,
		description: "Complete reconstruction of Gandhi Road with modern infrastructure", createdBy: "Admin Khan",
	},
	{
		code: "PRJ-2023-008", name: "Patel Road Widening", roadCode: "MG-R-014", vendorName: "Highway Developers Inc.",
		projectType: domain.ProjectTypeWidening, wardNumber: 1, budget: 3.8,
		start: date(2023, time.March, 10), end: date(2023, time.December, 20), status: domain.ProjectStatusInProgress, progress: 65,
		description: "Widening of Patel Road from 2-lane to 4-lane", createdBy: "Raj Sharma",
	},
	{
		code: "PRJ-2023-012", name: "Station Road Repair", roadCode: "MG-R-022", vendorName: "Roadways Solutions",
		projectType: domain.ProjectTypeRepair, wardNumber: 3, budget: 1.2,
		start: date(2023, time.April, 25), end: date(2023, time.August, 25), status: domain.ProjectStatusScheduled, progress: 0,
		description: "Repair of damaged sections and resurfacing of Station Road", createdBy: "Priya Patel",
	},
	{
		code: "PRJ-2023-005", name: "Market Road Bridge", roadCode: "MG-R-008", vendorName: "Bridge Builders Co.",
		projectType: domain.ProjectTypeBridge, wardNumber: 5, budget: 5.6,
		start: date(2023, time.February, 10), end: date(2023, time.November, 15), status: domain.ProjectStatusDelayed, progress: 30,
		description: "Construction of new bridge over the canal on Market Road", createdBy: "Vikram Singh",
	},
	{
		code: "PRJ-2023-015", name: "College Road Construction", roadCode: "MG-R-036", vendorName: "Urban Infrastructure Ltd.",
		projectType: domain.ProjectTypeNewConstruction, wardNumber: 4, budget: 3.2,
		start: date(2023, time.May, 5), end: date(2023, time.December, 10), status: domain.ProjectStatusInProgress, progress: 45,
		description: "Construction of new road connecting educational institutions", createdBy: "Admin Khan",
	},
}

type activitySeed struct {
	activityType string
	description  string
	userID       string
	userName     string
}

var activities = []activitySeed{
	{"system", "Road Infrastructure Tracking System initialized", "system", "System"},
	{"batch_update", "12 new roads added to the registry", "admin", "Admin Khan"},
}
