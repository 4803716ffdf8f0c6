package catalog

import "context"

const (
	RoleSoftwareEngineer   = "software engineer"
	RoleDataScientist      = "data scientist"
	RoleFullStackDeveloper = "full stack developer"
)

func builtinRoles() []Role {
	return []Role{
		{Key: RoleSoftwareEngineer, Requirements: []SkillRequirement{
			{SkillID: "DSA", RequiredLevel: 80, Priority: PriorityHigh, Category: "Programming"},
			{SkillID: "System Design", RequiredLevel: 70, Priority: PriorityHigh, Category: "Architecture"},
			{SkillID: "React", RequiredLevel: 75, Priority: PriorityHigh, Category: "Frontend"},
			{SkillID: "Node.js", RequiredLevel: 70, Priority: PriorityMedium, Category: "Backend"},
			{SkillID: "Database Design", RequiredLevel: 65, Priority: PriorityMedium, Category: "Database"},
			{SkillID: "Git", RequiredLevel: 60, Priority: PriorityMedium, Category: "Tools"},
			{SkillID: "Testing", RequiredLevel: 65, Priority: PriorityMedium, Category: "Quality"},
			{SkillID: "DevOps", RequiredLevel: 50, Priority: PriorityLow, Category: "Operations"},
		}},
		{Key: RoleDataScientist, Requirements: []SkillRequirement{
			{SkillID: "Python", RequiredLevel: 85, Priority: PriorityHigh, Category: "Programming"},
			{SkillID: "Machine Learning", RequiredLevel: 80, Priority: PriorityHigh, Category: "ML"},
			{SkillID: "Statistics", RequiredLevel: 75, Priority: PriorityHigh, Category: "Math"},
			{SkillID: "SQL", RequiredLevel: 70, Priority: PriorityHigh, Category: "Database"},
			{SkillID: "Data Visualization", RequiredLevel: 65, Priority: PriorityMedium, Category: "Visualization"},
			{SkillID: "Deep Learning", RequiredLevel: 60, Priority: PriorityMedium, Category: "ML"},
			{SkillID: "Big Data", RequiredLevel: 55, Priority: PriorityLow, Category: "Data Engineering"},
		}},
		{Key: RoleFullStackDeveloper, Requirements: []SkillRequirement{
			{SkillID: "React", RequiredLevel: 80, Priority: PriorityHigh, Category: "Frontend"},
			{SkillID: "Node.js", RequiredLevel: 75, Priority: PriorityHigh, Category: "Backend"},
			{SkillID: "Database Design", RequiredLevel: 70, Priority: PriorityHigh, Category: "Database"},
			{SkillID: "API Development", RequiredLevel: 75, Priority: PriorityHigh, Category: "Backend"},
			{SkillID: "DSA", RequiredLevel: 65, Priority: PriorityMedium, Category: "Programming"},
			{SkillID: "System Design", RequiredLevel: 60, Priority: PriorityMedium, Category: "Architecture"},
			{SkillID: "DevOps", RequiredLevel: 55, Priority: PriorityMedium, Category: "Operations"},
		}},
	}
}

func builtinResources() map[string][]LearningResource {
	return map[string][]LearningResource{
		"DSA": {
			{Title: "LeetCode DSA Course", URL: "https://leetcode.com/explore/", Platform: "LeetCode", Duration: "3-4 months", Difficulty: "Intermediate"},
			{Title: "GeeksforGeeks DSA", URL: "https://www.geeksforgeeks.org/data-structures/", Platform: "GeeksforGeeks", Duration: "2-3 months", Difficulty: "Beginner"},
		},
		"System Design": {
			{Title: "Grokking System Design", URL: "https://www.educative.io/courses/grokking-the-system-design-interview", Platform: "Educative", Duration: "6-8 weeks", Difficulty: "Advanced"},
			{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer", Platform: "GitHub", Duration: "4-6 weeks", Difficulty: "Intermediate"},
		},
		"React": {
			{Title: "React Official Tutorial", URL: "https://reactjs.org/tutorial/tutorial.html", Platform: "React Docs", Duration: "2-3 weeks", Difficulty: "Beginner"},
			{Title: "Complete React Course", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Platform: "Udemy", Duration: "8-10 weeks", Difficulty: "Intermediate"},
		},
		"Python": {
			{Title: "Python for Data Science", URL: "https://www.coursera.org/specializations/python", Platform: "Coursera", Duration: "6-8 weeks", Difficulty: "Beginner"},
			{Title: "Advanced Python Programming", URL: "https://www.edx.org/course/introduction-to-python-programming", Platform: "edX", Duration: "4-6 weeks", Difficulty: "Advanced"},
		},
		"Machine Learning": {
			{Title: "ML Course by Andrew Ng", URL: "https://www.coursera.org/learn/machine-learning", Platform: "Coursera", Duration: "11 weeks", Difficulty: "Intermediate"},
			{Title: "Hands-On Machine Learning", URL: "https://www.oreilly.com/library/view/hands-on-machine-learning/9781492032632/", Platform: "O'Reilly", Duration: "12-16 weeks", Difficulty: "Advanced"},
		},
	}
}

// Default returns the built-in role and resource tables.
func Default() *Catalog {
	c, err := New(builtinRoles(), builtinResources())
	if err != nil {
		panic("catalog: built-in tables are invalid: " + err.Error())
	}
	return c
}

// Builtin is a Source serving Default.
type Builtin struct{}

func (Builtin) Load(context.Context) (*Catalog, error) {
	return Default(), nil
}
