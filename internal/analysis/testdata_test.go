package analysis

// Shared fixtures for analysis tests.

// sampleResumeText is a realistic resume: three essential sections, contact
// info, well over 100 significant words, many recognized skills, and
// quantified achievements. It contains no certificate vocabulary.
const sampleResumeText = `John Smith
Software Engineer
Email: john.smith@example.com | Phone: 555-123-4567 | San Francisco, CA

SUMMARY
Senior software engineer with 8 years of experience designing and building
scalable web platforms for high-traffic consumer products. Passionate about
clean architecture, mentoring, and measurable results.

EXPERIENCE
Senior Software Engineer, Acme Corp (2019 - Present)
- Led a team of 6 developers building microservices with go and docker
- Increased revenue by 20% through checkout flow optimization
- Improved API performance by 35% and reduced infrastructure costs by $50k
- Designed authentication and authorization services used by 40 internal teams
- Managed migration of legacy workloads onto kubernetes across three regions

Software Developer, Beta Labs (2015 - 2019)
- Developed react and nodejs applications backed by postgresql and redis
- Implemented ci/cd pipelines with jenkins, cutting release time by 60%
- Built automated testing and debugging tooling adopted by the whole team
- Created internal dashboards with javascript, typescript, html, and css

EDUCATION
Bachelor of Science in Computer Science, State University (2015)
Graduated with honors; studied algorithms, databases, and security.

SKILLS
javascript, typescript, python, java, react, angular, nodejs, html, css,
mongodb, mysql, postgresql, redis, aws, docker, kubernetes, git, sql,
tableau, excel, leadership, communication, teamwork, agile, scrum, rest,
performance, scalability

ACHIEVEMENTS
Recognized as engineer of the quarter twice for delivery excellence and
collaboration across 12 client projects.
`

// sampleCertificateText is a certificate-of-completion document padded with
// resume-like language to exercise the override precedence.
const sampleCertificateText = `CERTIFICATE OF COMPLETION

This certificate confirms completion of the training program.

This is to hereby certify that Jane Doe has successfully completed the
Advanced Cloud Computing course offered by the Online Learning Academy.

Jane has experience with cloud platforms and this experience was assessed
through practical labs. The experience gained includes deployment experience
and operational experience with production systems. Contact the academy at
registrar@academy.example.com for verification of this award.

The program covered virtualization, networking, storage, container
orchestration, monitoring, and reliability engineering practices across
twelve intensive modules with hands-on projects and a final capstone
assessment graded by industry professionals from partner companies around
the world during the spring session of this calendar year.
`

// sampleShortText is below the minimum analyzable length
const sampleShortText = "Too short."
