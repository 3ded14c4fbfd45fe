package projection

var roleProfiles = map[Role]RoleProfile{
	RoleFrontend: {
		Name:       "Frontend Developer",
		Aliases:    []string{"frontend", "front end developer", "frontend engineer", "ui developer", "react developer"},
		BaseSalary: 4.0,
		Multiplier: 1.00,
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Next.js", "HTML", "CSS",
			"Tailwind CSS", "Redux", "Jest", "Webpack", "Git", "REST APIs",
		},
		Requirements: []string{
			"Strong JavaScript and TypeScript fundamentals",
			"Component-driven UI development with React",
			"Responsive, accessible layouts with modern CSS",
			"Unit and integration testing of UI code",
			"Consuming REST APIs and managing client state",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Responsive Portfolio Site",
				TechStack:           []string{"HTML", "CSS", "JavaScript", "Tailwind CSS"},
				Description:         "A fast, accessible personal portfolio with a project gallery and contact form.",
				Impact:              "Gives recruiters a polished first impression and a live sample of your UI work.",
				WhatYouWillBuild:    []string{"Mobile-first responsive layout", "Project gallery with filtering", "Lighthouse score above 90"},
				WhyThisMatters:      "Hiring managers open a portfolio before they open a resume.",
				WhatRecruiterLearns: []string{"You ship production-quality UI", "You care about accessibility and performance"},
				LearningOutcomes:    []string{"Semantic HTML", "CSS layout systems", "Web performance basics"},
			},
			{
				Title:               "Task Board with React",
				TechStack:           []string{"React", "TypeScript", "Redux", "Jest"},
				Description:         "A drag-and-drop kanban board with persisted state and keyboard support.",
				Impact:              "Demonstrates state management and component design at realistic scale.",
				WhatYouWillBuild:    []string{"Drag-and-drop columns", "Typed Redux store", "Component tests with Jest"},
				WhyThisMatters:      "Most frontend interviews probe state management and testing.",
				WhatRecruiterLearns: []string{"You structure non-trivial React apps", "You write tests for UI logic"},
				LearningOutcomes:    []string{"Typed React components", "Predictable state updates", "Testing user interactions"},
			},
			{
				Title:               "E-commerce Storefront",
				TechStack:           []string{"Next.js", "TypeScript", "REST APIs", "Tailwind CSS"},
				Description:         "A server-rendered storefront with product search, cart and checkout flow.",
				Impact:              "Shows end-to-end product thinking on a commercial use case.",
				WhatYouWillBuild:    []string{"Server-side rendered product pages", "Cart with optimistic updates", "Checkout form validation"},
				WhyThisMatters:      "Commerce flows are a staple of frontend hiring exercises.",
				WhatRecruiterLearns: []string{"You handle data fetching and SEO", "You build complete user journeys"},
				LearningOutcomes:    []string{"Next.js rendering modes", "API integration patterns", "Form handling"},
			},
			{
				Title:               "Design System Library",
				TechStack:           []string{"React", "TypeScript", "CSS", "Webpack"},
				Description:         "A documented, versioned component library consumed by a demo application.",
				Impact:              "Signals senior-level thinking about reuse and consistency.",
				WhatYouWillBuild:    []string{"Themeable component set", "Usage documentation", "Bundled and versioned package"},
				WhyThisMatters:      "Teams value engineers who raise the quality bar for everyone else.",
				WhatRecruiterLearns: []string{"You design reusable APIs", "You think about other developers"},
				LearningOutcomes:    []string{"Component API design", "Theming", "Build tooling"},
			},
		},
	},
	RoleBackend: {
		Name:       "Backend Developer",
		Aliases:    []string{"backend", "back end developer", "backend engineer", "server side developer", "api developer"},
		BaseSalary: 4.5,
		Multiplier: 1.05,
		Skills: []string{
			"Node.js", "Python", "Java", "Go", "REST APIs", "PostgreSQL",
			"MongoDB", "Redis", "Docker", "Microservices", "GraphQL", "AWS",
		},
		Requirements: []string{
			"Designing and versioning REST APIs",
			"Relational data modelling and SQL",
			"Caching and performance tuning",
			"Containerised deployment",
			"Observability: logging, metrics and tracing",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "REST API with Authentication",
				TechStack:           []string{"Node.js", "REST APIs", "PostgreSQL", "Docker"},
				Description:         "A documented CRUD API with token authentication, pagination and migrations.",
				Impact:              "Covers the fundamentals every backend interview starts with.",
				WhatYouWillBuild:    []string{"Versioned REST endpoints", "Token-based authentication", "Database migrations"},
				WhyThisMatters:      "A clean, tested API is the clearest proof of backend competence.",
				WhatRecruiterLearns: []string{"You model data sensibly", "You secure endpoints correctly"},
				LearningOutcomes:    []string{"HTTP semantics", "Schema design", "Auth flows"},
			},
			{
				Title:               "URL Shortener with Caching",
				TechStack:           []string{"Go", "Redis", "PostgreSQL", "Docker"},
				Description:         "A high-throughput URL shortener with a read-through cache and click analytics.",
				Impact:              "Demonstrates performance awareness and cache design.",
				WhatYouWillBuild:    []string{"Collision-free short codes", "Read-through Redis cache", "Click analytics endpoint"},
				WhyThisMatters:      "Caching questions appear in nearly every backend system design round.",
				WhatRecruiterLearns: []string{"You reason about latency", "You measure before optimising"},
				LearningOutcomes:    []string{"Cache invalidation", "Load testing", "Indexing strategies"},
			},
			{
				Title:               "Event-driven Order Service",
				TechStack:           []string{"Java", "Microservices", "MongoDB", "Docker"},
				Description:         "Order and inventory services communicating through events with retries.",
				Impact:              "Shows you can design for failure across service boundaries.",
				WhatYouWillBuild:    []string{"Two cooperating services", "Idempotent event handlers", "Retry and dead-letter handling"},
				WhyThisMatters:      "Distributed systems experience separates mid-level from junior candidates.",
				WhatRecruiterLearns: []string{"You understand eventual consistency", "You design for failure"},
				LearningOutcomes:    []string{"Messaging patterns", "Idempotency", "Service boundaries"},
			},
			{
				Title:               "GraphQL Gateway on AWS",
				TechStack:           []string{"GraphQL", "Node.js", "AWS", "Redis"},
				Description:         "A GraphQL gateway aggregating several APIs, deployed with infrastructure as code.",
				Impact:              "Combines API design with cloud deployment experience.",
				WhatYouWillBuild:    []string{"Federated GraphQL schema", "Batched data loaders", "Cloud deployment pipeline"},
				WhyThisMatters:      "Cloud-deployed systems are what production teams actually run.",
				WhatRecruiterLearns: []string{"You can own a service end to end", "You know cloud primitives"},
				LearningOutcomes:    []string{"Schema design", "N+1 query avoidance", "Cloud deployment"},
			},
		},
	},
	RoleFullStack: {
		Name:       "Full Stack Developer",
		Aliases:    []string{"full stack", "fullstack", "fullstack developer", "full stack engineer", "mern developer", "software engineer", "software developer"},
		BaseSalary: 4.5,
		Multiplier: 1.08,
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Node.js", "Express", "PostgreSQL",
			"MongoDB", "REST APIs", "Docker", "Next.js", "GraphQL", "AWS",
		},
		Requirements: []string{
			"Building user interfaces with a modern framework",
			"Designing APIs and data models",
			"Deploying and operating full applications",
			"Authentication and security basics",
			"Testing across the stack",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Personal Finance Tracker",
				TechStack:           []string{"React", "Node.js", "Express", "MongoDB"},
				Description:         "A budgeting app with transaction import, categories and monthly charts.",
				Impact:              "A complete product that exercises every layer of the stack.",
				WhatYouWillBuild:    []string{"React dashboard with charts", "Express API with validation", "MongoDB persistence"},
				WhyThisMatters:      "End-to-end ownership is the core promise of a full stack engineer.",
				WhatRecruiterLearns: []string{"You ship complete features", "You connect UI to data cleanly"},
				LearningOutcomes:    []string{"API contracts", "Client state", "Data modelling"},
			},
			{
				Title:               "Real-time Chat Application",
				TechStack:           []string{"React", "Node.js", "TypeScript", "PostgreSQL"},
				Description:         "A multi-room chat with presence, message history and read receipts.",
				Impact:              "Demonstrates real-time communication and concurrency handling.",
				WhatYouWillBuild:    []string{"WebSocket messaging", "Message persistence", "Presence indicators"},
				WhyThisMatters:      "Real-time features are common and hard to get right.",
				WhatRecruiterLearns: []string{"You handle concurrency", "You design event flows"},
				LearningOutcomes:    []string{"WebSockets", "Pagination of history", "Typed full stack code"},
			},
			{
				Title:               "Job Board Platform",
				TechStack:           []string{"Next.js", "GraphQL", "PostgreSQL", "Docker"},
				Description:         "A job board with search, applications and employer dashboards.",
				Impact:              "Shows multi-role product design with search and permissions.",
				WhatYouWillBuild:    []string{"Full-text job search", "Role-based dashboards", "Containerised deployment"},
				WhyThisMatters:      "Multi-tenant products mirror what most companies build.",
				WhatRecruiterLearns: []string{"You handle permissions", "You build searchable data"},
				LearningOutcomes:    []string{"Search indexing", "Authorization", "GraphQL resolvers"},
			},
			{
				Title:               "SaaS Starter on AWS",
				TechStack:           []string{"TypeScript", "REST APIs", "AWS", "Docker"},
				Description:         "A subscription-ready SaaS skeleton with billing, teams and CI deployment.",
				Impact:              "Proves you can run a production system, not just write one.",
				WhatYouWillBuild:    []string{"Team and billing models", "CI/CD pipeline", "Monitored cloud deployment"},
				WhyThisMatters:      "Operational maturity is what makes a full stack hire senior.",
				WhatRecruiterLearns: []string{"You think about operations", "You automate delivery"},
				LearningOutcomes:    []string{"Cloud deployment", "Billing integration", "Monitoring"},
			},
		},
	},
	RoleDataScientist: {
		Name:       "Data Scientist",
		Aliases:    []string{"data science", "data analyst", "ml engineer", "machine learning engineer", "ai engineer"},
		BaseSalary: 5.5,
		Multiplier: 1.12,
		Skills: []string{
			"Python", "SQL", "Pandas", "NumPy", "scikit-learn", "Machine Learning",
			"Statistics", "TensorFlow", "PyTorch", "Data Analysis", "Tableau", "Deep Learning",
		},
		Requirements: []string{
			"Statistical reasoning and experiment design",
			"Data wrangling with Python and SQL",
			"Supervised and unsupervised modelling",
			"Model evaluation and validation",
			"Communicating insights to stakeholders",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Exploratory Analysis Report",
				TechStack:           []string{"Python", "Pandas", "SQL", "Data Analysis"},
				Description:         "A reproducible analysis of a public dataset with clear, actionable findings.",
				Impact:              "Shows you can turn raw data into decisions.",
				WhatYouWillBuild:    []string{"Cleaned dataset pipeline", "Statistical summaries", "Written findings report"},
				WhyThisMatters:      "Most data science work is analysis, not modelling.",
				WhatRecruiterLearns: []string{"You ask good questions of data", "You communicate clearly"},
				LearningOutcomes:    []string{"Data cleaning", "Descriptive statistics", "Visual storytelling"},
			},
			{
				Title:               "Churn Prediction Model",
				TechStack:           []string{"Python", "scikit-learn", "Machine Learning", "Statistics"},
				Description:         "A customer churn classifier with feature engineering and cost-aware evaluation.",
				Impact:              "Demonstrates the full supervised learning workflow on a business problem.",
				WhatYouWillBuild:    []string{"Feature engineering pipeline", "Cross-validated models", "Precision/recall trade-off analysis"},
				WhyThisMatters:      "Churn modelling is a classic interview case study.",
				WhatRecruiterLearns: []string{"You validate models properly", "You connect metrics to business value"},
				LearningOutcomes:    []string{"Feature engineering", "Model selection", "Evaluation metrics"},
			},
			{
				Title:               "Sales Forecasting Dashboard",
				TechStack:           []string{"Python", "NumPy", "Tableau", "SQL"},
				Description:         "Time-series forecasts of sales surfaced in an interactive dashboard.",
				Impact:              "Combines modelling with stakeholder-facing delivery.",
				WhatYouWillBuild:    []string{"Seasonality-aware forecasts", "Backtesting harness", "Interactive dashboard"},
				WhyThisMatters:      "Forecasting drives planning in almost every company.",
				WhatRecruiterLearns: []string{"You handle time series", "You deliver insights people use"},
				LearningOutcomes:    []string{"Time-series methods", "Backtesting", "Dashboard design"},
			},
			{
				Title:               "Image Classifier Service",
				TechStack:           []string{"PyTorch", "Deep Learning", "TensorFlow", "Python"},
				Description:         "A fine-tuned image classifier exposed through a small inference API.",
				Impact:              "Shows deep learning skills taken all the way to deployment.",
				WhatYouWillBuild:    []string{"Transfer-learning training loop", "Evaluation on held-out data", "Inference endpoint"},
				WhyThisMatters:      "Deployed models are worth far more than notebooks.",
				WhatRecruiterLearns: []string{"You train modern networks", "You care about production use"},
				LearningOutcomes:    []string{"Transfer learning", "GPU training basics", "Model serving"},
			},
		},
	},
	RoleDevOps: {
		Name:       "DevOps Engineer",
		Aliases:    []string{"devops", "site reliability engineer", "sre", "platform engineer", "cloud engineer"},
		BaseSalary: 5.0,
		Multiplier: 1.10,
		Skills: []string{
			"Linux", "Docker", "Kubernetes", "AWS", "Terraform", "CI/CD",
			"Jenkins", "GitHub Actions", "Ansible", "Prometheus", "Grafana", "Python",
		},
		Requirements: []string{
			"Linux administration and scripting",
			"Container orchestration with Kubernetes",
			"Infrastructure as code",
			"Continuous integration and delivery pipelines",
			"Monitoring, alerting and incident response",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Containerised App Pipeline",
				TechStack:           []string{"Docker", "GitHub Actions", "CI/CD", "Linux"},
				Description:         "A CI/CD pipeline that tests, builds and ships a containerised app on every push.",
				Impact:              "The foundational DevOps skill, demonstrated end to end.",
				WhatYouWillBuild:    []string{"Multi-stage Docker build", "Automated test stage", "Tagged image releases"},
				WhyThisMatters:      "Every team needs reliable delivery before anything else.",
				WhatRecruiterLearns: []string{"You automate repetitive work", "You keep builds reproducible"},
				LearningOutcomes:    []string{"Dockerfiles", "Pipeline design", "Release tagging"},
			},
			{
				Title:               "Infrastructure as Code on AWS",
				TechStack:           []string{"Terraform", "AWS", "Linux", "Ansible"},
				Description:         "A fully codified VPC, compute and database stack with environments.",
				Impact:              "Shows you can build cloud infrastructure safely and repeatably.",
				WhatYouWillBuild:    []string{"Modular Terraform stack", "Separate staging and production", "Configuration management"},
				WhyThisMatters:      "Manual infrastructure does not survive an audit or an outage.",
				WhatRecruiterLearns: []string{"You manage state and drift", "You design secure networks"},
				LearningOutcomes:    []string{"Terraform modules", "Cloud networking", "Secrets handling"},
			},
			{
				Title:               "Kubernetes Cluster Deployment",
				TechStack:           []string{"Kubernetes", "Docker", "Prometheus", "Grafana"},
				Description:         "A multi-service app on Kubernetes with autoscaling, probes and dashboards.",
				Impact:              "Demonstrates production-grade orchestration and observability.",
				WhatYouWillBuild:    []string{"Helm-managed services", "Horizontal autoscaling", "Metrics dashboards"},
				WhyThisMatters:      "Kubernetes is the default runtime for modern platforms.",
				WhatRecruiterLearns: []string{"You run workloads reliably", "You instrument systems"},
				LearningOutcomes:    []string{"Deployments and services", "Autoscaling", "Prometheus queries"},
			},
			{
				Title:               "Self-healing Monitoring Stack",
				TechStack:           []string{"Prometheus", "Grafana", "Python", "Jenkins"},
				Description:         "Alerting with automated remediation runbooks for common failures.",
				Impact:              "Shows SRE maturity beyond dashboards.",
				WhatYouWillBuild:    []string{"SLO-based alerts", "Automated remediation scripts", "Incident postmortem template"},
				WhyThisMatters:      "Reducing toil is the measure of a strong DevOps engineer.",
				WhatRecruiterLearns: []string{"You think in SLOs", "You reduce operational toil"},
				LearningOutcomes:    []string{"Alert design", "Runbook automation", "Incident review"},
			},
		},
	},
	RoleProductManager: {
		Name:       "Product Manager",
		Aliases:    []string{"pm", "product management", "associate product manager", "apm", "product owner"},
		BaseSalary: 6.5,
		Multiplier: 1.15,
		Skills: []string{
			"Product Roadmapping", "Agile", "Scrum", "Jira", "A/B Testing", "Analytics",
			"SQL", "User Research", "Figma", "Confluence", "Data Analysis", "Wireframing",
		},
		Requirements: []string{
			"Defining product vision and roadmap",
			"Prioritising with data and customer insight",
			"Running agile delivery with engineering",
			"Designing and reading experiments",
			"Clear written and verbal communication",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Product Teardown and Roadmap",
				TechStack:           []string{"Product Roadmapping", "User Research", "Confluence"},
				Description:         "A teardown of a popular product with a prioritised twelve-month roadmap.",
				Impact:              "Shows structured product thinking on a real product.",
				WhatYouWillBuild:    []string{"Competitive teardown", "Opportunity sizing", "Prioritised roadmap"},
				WhyThisMatters:      "PM interviews revolve around product sense.",
				WhatRecruiterLearns: []string{"You prioritise with reasoning", "You write clearly"},
				LearningOutcomes:    []string{"Prioritisation frameworks", "Market analysis", "Roadmap communication"},
			},
			{
				Title:               "Feature PRD with Wireframes",
				TechStack:           []string{"Figma", "Wireframing", "Jira", "Agile"},
				Description:         "A complete product requirements document with wireframes and a delivery plan.",
				Impact:              "Demonstrates how you hand work to design and engineering.",
				WhatYouWillBuild:    []string{"Problem statement and metrics", "Annotated wireframes", "Sprint-ready backlog"},
				WhyThisMatters:      "Execution skills are tested as much as strategy.",
				WhatRecruiterLearns: []string{"You define success metrics", "You collaborate across functions"},
				LearningOutcomes:    []string{"Requirement writing", "Backlog grooming", "Design collaboration"},
			},
			{
				Title:               "Experiment Analysis Case Study",
				TechStack:           []string{"A/B Testing", "SQL", "Analytics", "Data Analysis"},
				Description:         "Design and analysis of an A/B test on a public dataset with a launch decision.",
				Impact:              "Shows data-driven decision making.",
				WhatYouWillBuild:    []string{"Hypothesis and metric tree", "SQL analysis of results", "Launch recommendation"},
				WhyThisMatters:      "Modern PMs are expected to read experiments themselves.",
				WhatRecruiterLearns: []string{"You are comfortable with data", "You make evidence-based calls"},
				LearningOutcomes:    []string{"Experiment design", "Statistical significance", "Metric selection"},
			},
			{
				Title:               "Launch Plan for a Side Product",
				TechStack:           []string{"Scrum", "Analytics", "User Research", "Product Roadmapping"},
				Description:         "Ship a small product to real users and report on adoption.",
				Impact:              "Real users and real numbers beat any hypothetical case.",
				WhatYouWillBuild:    []string{"Go-to-market plan", "Feedback loop with users", "Adoption report"},
				WhyThisMatters:      "Shipping experience is the strongest PM signal.",
				WhatRecruiterLearns: []string{"You ship", "You learn from users"},
				LearningOutcomes:    []string{"Launch planning", "User interviews", "Retention analysis"},
			},
		},
	},
	RoleUIUX: {
		Name:       "UI/UX Designer",
		Aliases:    []string{"ux designer", "ui designer", "product designer", "uiux designer", "ux researcher"},
		BaseSalary: 3.8,
		Multiplier: 0.98,
		Skills: []string{
			"Figma", "User Research", "Wireframing", "Prototyping", "UI Design", "UX Design",
			"Adobe XD", "Sketch", "HTML", "CSS", "Illustrator", "Photoshop",
		},
		Requirements: []string{
			"User research and synthesis",
			"Information architecture and flows",
			"High-fidelity interface design",
			"Interactive prototyping and usability testing",
			"Design systems and handoff",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "App Redesign Case Study",
				TechStack:           []string{"Figma", "UI Design", "Wireframing"},
				Description:         "A redesign of an existing app with before/after flows and rationale.",
				Impact:              "The standard portfolio piece for design hiring.",
				WhatYouWillBuild:    []string{"Heuristic evaluation", "Redesigned key flows", "Case study write-up"},
				WhyThisMatters:      "Design hiring is portfolio-first.",
				WhatRecruiterLearns: []string{"You justify design decisions", "You improve real products"},
				LearningOutcomes:    []string{"Heuristic review", "Visual hierarchy", "Case study writing"},
			},
			{
				Title:               "User Research Study",
				TechStack:           []string{"User Research", "UX Design", "Prototyping"},
				Description:         "Interviews and usability tests that drive a measurable design change.",
				Impact:              "Shows research rigour behind the visuals.",
				WhatYouWillBuild:    []string{"Interview guide and recruiting", "Affinity map of findings", "Tested prototype iteration"},
				WhyThisMatters:      "Teams want designers who validate before they polish.",
				WhatRecruiterLearns: []string{"You listen to users", "You iterate on evidence"},
				LearningOutcomes:    []string{"Interviewing", "Synthesis", "Usability testing"},
			},
			{
				Title:               "Mobile App Prototype",
				TechStack:           []string{"Figma", "Prototyping", "Adobe XD", "Illustrator"},
				Description:         "A high-fidelity interactive prototype of a new mobile product.",
				Impact:              "Demonstrates interaction design and motion details.",
				WhatYouWillBuild:    []string{"End-to-end onboarding flow", "Micro-interactions", "Clickable prototype"},
				WhyThisMatters:      "Interaction quality is what users remember.",
				WhatRecruiterLearns: []string{"You design complete experiences", "You sweat the details"},
				LearningOutcomes:    []string{"Interaction patterns", "Prototyping tools", "Mobile guidelines"},
			},
			{
				Title:               "Design System Starter",
				TechStack:           []string{"Figma", "UI Design", "HTML", "CSS"},
				Description:         "A token-based design system with documented components and code handoff.",
				Impact:              "Signals senior, systems-level design thinking.",
				WhatYouWillBuild:    []string{"Design tokens", "Component library", "Developer handoff notes"},
				WhyThisMatters:      "Design systems scale a team's output.",
				WhatRecruiterLearns: []string{"You think in systems", "You work well with engineers"},
				LearningOutcomes:    []string{"Design tokens", "Component documentation", "Handoff practices"},
			},
		},
	},
	RoleMobile: {
		Name:       "Mobile Developer",
		Aliases:    []string{"mobile", "android developer", "ios developer", "flutter developer", "mobile engineer", "app developer"},
		BaseSalary: 4.2,
		Multiplier: 1.03,
		Skills: []string{
			"Kotlin", "Swift", "Flutter", "React Native", "Android", "iOS",
			"Dart", "Firebase", "REST APIs", "SwiftUI", "Jetpack Compose", "Git",
		},
		Requirements: []string{
			"Native or cross-platform app development",
			"Offline-first data and sync",
			"Platform UI guidelines",
			"App store release process",
			"Performance and battery profiling",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "Habit Tracker App",
				TechStack:           []string{"Flutter", "Dart", "Firebase"},
				Description:         "A cross-platform habit tracker with reminders and streaks.",
				Impact:              "A shippable app that shows core mobile skills.",
				WhatYouWillBuild:    []string{"Local notifications", "Streak tracking", "Cloud sync"},
				WhyThisMatters:      "A published app is the strongest mobile signal.",
				WhatRecruiterLearns: []string{"You ship to real devices", "You handle app lifecycle"},
				LearningOutcomes:    []string{"State management", "Notifications", "Cloud sync"},
			},
			{
				Title:               "Native Android News Reader",
				TechStack:           []string{"Kotlin", "Android", "Jetpack Compose", "REST APIs"},
				Description:         "A news reader with offline caching and pull-to-refresh.",
				Impact:              "Demonstrates modern native Android development.",
				WhatYouWillBuild:    []string{"Compose UI", "Offline cache", "Paginated feed"},
				WhyThisMatters:      "Offline behaviour is where mobile apps usually break.",
				WhatRecruiterLearns: []string{"You know the platform", "You design for flaky networks"},
				LearningOutcomes:    []string{"Compose", "Local persistence", "Networking"},
			},
			{
				Title:               "iOS Fitness Companion",
				TechStack:           []string{"Swift", "SwiftUI", "iOS"},
				Description:         "A workout logger with charts and health data integration.",
				Impact:              "Shows native iOS skills and platform integration.",
				WhatYouWillBuild:    []string{"SwiftUI screens", "Health data integration", "Progress charts"},
				WhyThisMatters:      "Platform integrations set experienced developers apart.",
				WhatRecruiterLearns: []string{"You use platform APIs well", "You build polished UI"},
				LearningOutcomes:    []string{"SwiftUI", "Platform permissions", "Charting"},
			},
			{
				Title:               "Cross-platform Marketplace",
				TechStack:           []string{"React Native", "Firebase", "REST APIs", "Git"},
				Description:         "A buy-and-sell marketplace with chat, images and payments.",
				Impact:              "Production-scale app complexity in a portfolio piece.",
				WhatYouWillBuild:    []string{"Listing and search", "In-app chat", "Image upload pipeline"},
				WhyThisMatters:      "Marketplaces touch every hard part of mobile development.",
				WhatRecruiterLearns: []string{"You manage complex state", "You integrate backend services"},
				LearningOutcomes:    []string{"Navigation", "Media handling", "Payments"},
			},
		},
	},
	RoleQA: {
		Name:       "QA Engineer",
		Aliases:    []string{"qa", "quality assurance engineer", "test engineer", "sdet", "automation tester", "software tester"},
		BaseSalary: 3.5,
		Multiplier: 0.95,
		Skills: []string{
			"Selenium", "Test Automation", "Java", "Python", "Cypress", "Postman",
			"JUnit", "PyTest", "Jest", "Appium", "CI/CD", "Jira",
		},
		Requirements: []string{
			"Test planning and case design",
			"UI test automation",
			"API testing",
			"Continuous testing in CI pipelines",
			"Defect tracking and reporting",
		},
		Templates: []ProjectTemplate{
			{
				Title:               "API Test Suite",
				TechStack:           []string{"Postman", "Python", "PyTest"},
				Description:         "An automated test suite for a public API with data-driven cases.",
				Impact:              "Covers the most requested QA automation skill.",
				WhatYouWillBuild:    []string{"Data-driven API tests", "Schema assertions", "Readable test reports"},
				WhyThisMatters:      "API tests are fast, stable and valued by every team.",
				WhatRecruiterLearns: []string{"You automate meaningfully", "You design good test data"},
				LearningOutcomes:    []string{"API testing", "Fixtures", "Reporting"},
			},
			{
				Title:               "UI Automation Framework",
				TechStack:           []string{"Selenium", "Java", "JUnit", "Test Automation"},
				Description:         "A page-object based UI framework covering a demo shop's checkout.",
				Impact:              "Shows maintainable UI automation design.",
				WhatYouWillBuild:    []string{"Page object model", "Cross-browser runs", "Screenshot on failure"},
				WhyThisMatters:      "Flaky UI suites are a common pain point teams hire to fix.",
				WhatRecruiterLearns: []string{"You build maintainable suites", "You debug flakiness"},
				LearningOutcomes:    []string{"Page objects", "Waits and synchronisation", "Parallel runs"},
			},
			{
				Title:               "End-to-end Tests in CI",
				TechStack:           []string{"Cypress", "CI/CD", "Jest"},
				Description:         "End-to-end tests running on every pull request with recorded artifacts.",
				Impact:              "Demonstrates shift-left quality practices.",
				WhatYouWillBuild:    []string{"Cypress scenarios", "CI integration", "Flake tracking"},
				WhyThisMatters:      "Quality gates in CI prevent regressions before release.",
				WhatRecruiterLearns: []string{"You integrate with delivery", "You keep feedback fast"},
				LearningOutcomes:    []string{"Cypress", "CI configuration", "Test stability"},
			},
			{
				Title:               "Mobile Test Automation",
				TechStack:           []string{"Appium", "Python", "Test Automation", "Jira"},
				Description:         "Automated regression tests for a sample Android app with defect reporting.",
				Impact:              "Extends automation skills to mobile platforms.",
				WhatYouWillBuild:    []string{"Appium test suite", "Device matrix runs", "Defect reports"},
				WhyThisMatters:      "Mobile QA automation is a scarce and well-paid skill.",
				WhatRecruiterLearns: []string{"You cover multiple platforms", "You report defects clearly"},
				LearningOutcomes:    []string{"Appium", "Device testing", "Bug reporting"},
			},
		},
	},
}
