package seeders

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

// SeedCareers inserts the default job openings when the table is empty.
func SeedCareers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Career{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Failed to count careers before seeding", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Careers already present, seeding skipped.")
		return nil
	}

	careers := []models.Career{
		{
			Title:      models.LocalizedText{En: "Senior Mobile App Developer", Ar: "مطور تطبيقات جوال أول"},
			Department: models.LocalizedText{En: "Engineering", Ar: "الهندسة"},
			Location:   models.LocalizedText{En: "Doha, Qatar", Ar: "الدوحة، قطر"},
			Type:       models.LocalizedText{En: "Full-time", Ar: "دوام كامل"},
			Description: models.LocalizedText{
				En: "We're looking for an experienced mobile app developer to join our growing team in Doha. You'll work on cutting-edge mobile applications for leading Qatari businesses.",
				Ar: "نبحث عن مطور تطبيقات جوال ذو خبرة للانضمام إلى فريقنا المتنامي في الدوحة. ستعمل على تطبيقات جوال متطورة للشركات القطرية الرائدة.",
			},
			Requirements: models.LocalizedList{
				En: models.StringList{
					"5+ years of mobile development experience",
					"Expert in React Native or Flutter",
					"Strong knowledge of iOS and Android platforms",
					"Experience with Arabic RTL layouts",
					"Excellent problem-solving skills",
				},
				Ar: models.StringList{
					"أكثر من 5 سنوات من الخبرة في تطوير تطبيقات الجوال",
					"خبير في React Native أو Flutter",
					"معرفة قوية بمنصات iOS وAndroid",
					"خبرة في تخطيطات RTL العربية",
					"مهارات ممتازة في حل المشكلات",
				},
			},
			Responsibilities: models.LocalizedList{
				En: models.StringList{
					"Develop high-quality mobile applications",
					"Collaborate with design and backend teams",
					"Write clean, maintainable code",
					"Mentor junior developers",
				},
				Ar: models.StringList{
					"تطوير تطبيقات جوال عالية الجودة",
					"التعاون مع فرق التصميم والخادم",
					"كتابة كود نظيف وقابل للصيانة",
					"توجيه المطورين المبتدئين",
				},
			},
			Status: models.CareerStatusOpen,
		},
		{
			Title:      models.LocalizedText{En: "Full Stack Web Developer", Ar: "مطور ويب متكامل"},
			Department: models.LocalizedText{En: "Engineering", Ar: "الهندسة"},
			Location:   models.LocalizedText{En: "Doha, Qatar", Ar: "الدوحة، قطر"},
			Type:       models.LocalizedText{En: "Full-time", Ar: "دوام كامل"},
			Description: models.LocalizedText{
				En: "Join our web development team to build modern, responsive websites for Qatar's leading businesses. Work with latest technologies and frameworks.",
				Ar: "انضم إلى فريق تطوير الويب لدينا لبناء مواقع حديثة ومتجاوبة للشركات القطرية الرائدة. اعمل مع أحدث التقنيات والأطر.",
			},
			Requirements: models.LocalizedList{
				En: models.StringList{
					"3+ years of full stack development",
					"Proficient in React, Node.js, TypeScript",
					"Experience with databases (PostgreSQL, MongoDB)",
					"Understanding of Arabic content and RTL layouts",
					"Strong communication skills",
				},
				Ar: models.StringList{
					"أكثر من 3 سنوات في التطوير المتكامل",
					"إتقان React وNode.js وTypeScript",
					"خبرة في قواعد البيانات (PostgreSQL، MongoDB)",
					"فهم المحتوى العربي وتخطيطات RTL",
					"مهارات تواصل قوية",
				},
			},
			Responsibilities: models.LocalizedList{
				En: models.StringList{
					"Build responsive web applications",
					"Design and implement RESTful APIs",
					"Optimize application performance",
					"Work closely with designers and clients",
				},
				Ar: models.StringList{
					"بناء تطبيقات ويب متجاوبة",
					"تصميم وتنفيذ واجهات RESTful",
					"تحسين أداء التطبيقات",
					"العمل عن كثب مع المصممين والعملاء",
				},
			},
			Status: models.CareerStatusOpen,
		},
		{
			Title:      models.LocalizedText{En: "UI/UX Designer", Ar: "مصمم واجهات وتجربة مستخدم"},
			Department: models.LocalizedText{En: "Design", Ar: "التصميم"},
			Location:   models.LocalizedText{En: "Doha, Qatar", Ar: "الدوحة، قطر"},
			Type:       models.LocalizedText{En: "Full-time", Ar: "دوام كامل"},
			Description: models.LocalizedText{
				En: "Create beautiful, intuitive designs for mobile apps and websites that resonate with Qatari users. Join our creative team in Doha.",
				Ar: "أنشئ تصاميم جميلة وبديهية لتطبيقات الجوال والمواقع الإلكترونية التي تلقى صدى لدى المستخدمين القطريين. انضم إلى فريقنا الإبداعي في الدوحة.",
			},
			Requirements: models.LocalizedList{
				En: models.StringList{
					"3+ years of UI/UX design experience",
					"Strong portfolio showcasing mobile and web projects",
					"Proficient in Figma, Adobe XD, or Sketch",
					"Understanding of Arabic design aesthetics",
					"Experience with design systems",
				},
				Ar: models.StringList{
					"أكثر من 3 سنوات من الخبرة في تصميم UI/UX",
					"محفظة قوية تعرض مشاريع الجوال والويب",
					"إتقان Figma أو Adobe XD أو Sketch",
					"فهم جماليات التصميم العربي",
					"خبرة في أنظمة التصميم",
				},
			},
			Responsibilities: models.LocalizedList{
				En: models.StringList{
					"Design user interfaces for mobile and web",
					"Create wireframes and prototypes",
					"Conduct user research and testing",
					"Collaborate with development teams",
				},
				Ar: models.StringList{
					"تصميم واجهات المستخدم للجوال والويب",
					"إنشاء إطارات سلكية ونماذج أولية",
					"إجراء بحوث واختبارات المستخدمين",
					"التعاون مع فرق التطوير",
				},
			},
			Status: models.CareerStatusOpen,
		},
	}

	for i := range careers {
		if err := db.Create(&careers[i]).Error; err != nil {
			configslog.Log.Error("Failed to seed career",
				zap.String("title", careers[i].Title.En),
				zap.Error(err),
			)
			return err
		}
	}
	configslog.SLog.Infof("Seeded %d careers.", len(careers))
	return nil
}
