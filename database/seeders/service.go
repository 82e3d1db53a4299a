package seeders

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

// SeedServices inserts the default service packages when the table is empty.
func SeedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Failed to count services before seeding", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Services already present, seeding skipped.")
		return nil
	}

	services := []models.Service{
		{
			Name: models.LocalizedText{En: "Startup Mobile App", Ar: "تطبيق جوال للشركات الناشئة"},
			Description: models.LocalizedText{
				En: "Perfect for startups and small businesses looking to launch their first mobile app",
				Ar: "مثالي للشركات الناشئة والصغيرة التي تتطلع إلى إطلاق تطبيق الجوال الأول",
			},
			Price:    models.LocalizedText{En: "Starting from 15,000 QAR", Ar: "ابتداءً من 15,000 ريال قطري"},
			Category: models.ServiceCategoryMobile,
			Features: models.LocalizedList{
				En: models.StringList{
					"iOS & Android development",
					"Basic backend integration",
					"Push notifications",
					"3 months support",
					"App Store submission",
				},
				Ar: models.StringList{
					"تطوير iOS و Android",
					"تكامل خادم أساسي",
					"إشعارات فورية",
					"دعم لمدة 3 أشهر",
					"تقديم في متجر التطبيقات",
				},
			},
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Name: models.LocalizedText{En: "Enterprise Mobile App", Ar: "تطبيق جوال للمؤسسات"},
			Description: models.LocalizedText{
				En: "Full-featured mobile applications for established businesses with complex requirements",
				Ar: "تطبيقات جوال كاملة المواصفات للشركات الراسخة ذات المتطلبات المعقدة",
			},
			Price:    models.LocalizedText{En: "Starting from 45,000 QAR", Ar: "ابتداءً من 45,000 ريال قطري"},
			Category: models.ServiceCategoryMobile,
			Features: models.LocalizedList{
				En: models.StringList{
					"Advanced iOS & Android development",
					"Custom backend & API",
					"Real-time features",
					"Analytics & reporting",
					"12 months premium support",
					"Security & encryption",
				},
				Ar: models.StringList{
					"تطوير iOS و Android متقدم",
					"خادم وAPI مخصص",
					"ميزات الوقت الفعلي",
					"التحليلات والتقارير",
					"دعم مميز لمدة 12 شهرًا",
					"الأمان والتشفير",
				},
			},
			IsActive:     true,
			DisplayOrder: 2,
		},
		{
			Name: models.LocalizedText{En: "Business Website", Ar: "موقع أعمال"},
			Description: models.LocalizedText{
				En: "Professional website to establish your online presence and attract customers",
				Ar: "موقع احترافي لتأسيس وجودك على الإنترنت وجذب العملاء",
			},
			Price:    models.LocalizedText{En: "Starting from 8,000 QAR", Ar: "ابتداءً من 8,000 ريال قطري"},
			Category: models.ServiceCategoryWebsite,
			Features: models.LocalizedList{
				En: models.StringList{
					"Responsive design",
					"Up to 10 pages",
					"Contact form integration",
					"Arabic & English support",
					"SEO optimization",
					"3 months support",
				},
				Ar: models.StringList{
					"تصميم متجاوب",
					"حتى 10 صفحات",
					"تكامل نموذج الاتصال",
					"دعم العربية والإنجليزية",
					"تحسين محركات البحث",
					"دعم لمدة 3 أشهر",
				},
			},
			IsActive:     true,
			DisplayOrder: 3,
		},
		{
			Name: models.LocalizedText{En: "E-commerce Website", Ar: "موقع تجارة إلكترونية"},
			Description: models.LocalizedText{
				En: "Complete online store with payment processing and inventory management",
				Ar: "متجر إلكتروني كامل مع معالجة المدفوعات وإدارة المخزون",
			},
			Price:    models.LocalizedText{En: "Starting from 25,000 QAR", Ar: "ابتداءً من 25,000 ريال قطري"},
			Category: models.ServiceCategoryWebsite,
			Features: models.LocalizedList{
				En: models.StringList{
					"Product catalog",
					"Shopping cart & checkout",
					"Payment gateway integration",
					"Order management system",
					"Arabic & English support",
					"Analytics dashboard",
					"6 months support",
				},
				Ar: models.StringList{
					"كتالوج المنتجات",
					"عربة التسوق والدفع",
					"تكامل بوابة الدفع",
					"نظام إدارة الطلبات",
					"دعم العربية والإنجليزية",
					"لوحة التحليلات",
					"دعم لمدة 6 أشهر",
				},
			},
			IsActive:     true,
			DisplayOrder: 4,
		},
		{
			Name: models.LocalizedText{En: "Custom Web Application", Ar: "تطبيق ويب مخصص"},
			Description: models.LocalizedText{
				En: "Tailored web applications built to solve your specific business needs",
				Ar: "تطبيقات ويب مصممة خصيصًا لحل احتياجات عملك المحددة",
			},
			Price:    models.LocalizedText{En: "Starting from 35,000 QAR", Ar: "ابتداءً من 35,000 ريال قطري"},
			Category: models.ServiceCategoryWebsite,
			Features: models.LocalizedList{
				En: models.StringList{
					"Custom functionality",
					"Database design",
					"API development",
					"User authentication",
					"Admin dashboard",
					"Cloud hosting setup",
					"12 months support",
				},
				Ar: models.StringList{
					"وظائف مخصصة",
					"تصميم قاعدة البيانات",
					"تطوير API",
					"مصادقة المستخدم",
					"لوحة الإدارة",
					"إعداد الاستضافة السحابية",
					"دعم لمدة 12 شهرًا",
				},
			},
			IsActive:     true,
			DisplayOrder: 5,
		},
	}

	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			configslog.Log.Error("Failed to seed service",
				zap.String("name", services[i].Name.En),
				zap.Error(err),
			)
			return err
		}
	}
	configslog.SLog.Infof("Seeded %d services.", len(services))
	return nil
}
