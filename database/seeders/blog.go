package seeders

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"qatardigital.app/configs/configslog"
	"qatardigital.app/models"
)

// SeedBlogPosts inserts the default articles when the table is empty.
func SeedBlogPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Failed to count blog posts before seeding", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debug("Blog posts already present, seeding skipped.")
		return nil
	}

	posts := []models.BlogPost{
		{
			Title: models.LocalizedText{
				En: "Building Scalable Mobile Apps in Qatar",
				Ar: "بناء تطبيقات جوال قابلة للتوسع في قطر",
			},
			Slug: "scalable-mobile-apps-qatar",
			Excerpt: models.LocalizedText{
				En: "Best practices for building mobile apps that grow with your business",
				Ar: "أفضل الممارسات لبناء تطبيقات الجوال التي تنمو مع عملك",
			},
			Content: models.LocalizedText{
				En: "Learn how we develop mobile applications that scale with your business growth in the Qatari market. We focus on performance, security, and user experience...",
				Ar: "تعرف على كيفية تطوير تطبيقات الجوال التي تنمو مع نمو عملك في السوق القطري. نحن نركز على الأداء والأمان وتجربة المستخدم...",
			},
			Category: models.LocalizedText{
				En: "Mobile Development",
				Ar: "تطوير تطبيقات الجوال",
			},
			Author: models.LocalizedText{
				En: "Qatar Digital Solutions Team",
				Ar: "فريق حلول قطر الرقمية",
			},
			ImageURL:    "/attached_assets/stock_images/modern_mobile_app_de_2ee0ae45.jpg",
			PublishedAt: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title: models.LocalizedText{
				En: "Modern Web Development Trends in Qatar 2024",
				Ar: "اتجاهات تطوير الويب الحديثة في قطر 2024",
			},
			Slug: "web-development-trends-qatar-2024",
			Excerpt: models.LocalizedText{
				En: "Stay ahead with the latest web development technologies",
				Ar: "ابق في المقدمة مع أحدث تقنيات تطوير الويب",
			},
			Content: models.LocalizedText{
				En: "Explore the latest web development technologies and trends shaping the digital landscape in Qatar. From progressive web apps to modern frameworks...",
				Ar: "استكشف أحدث تقنيات واتجاهات تطوير الويب التي تشكل المشهد الرقمي في قطر. من تطبيقات الويب التقدمية إلى الأطر الحديثة...",
			},
			Category: models.LocalizedText{
				En: "Web Development",
				Ar: "تطوير المواقع",
			},
			Author: models.LocalizedText{
				En: "Qatar Digital Solutions Team",
				Ar: "فريق حلول قطر الرقمية",
			},
			ImageURL:    "/attached_assets/stock_images/web_development_codi_85800bb3.jpg",
			PublishedAt: time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title: models.LocalizedText{
				En: "Digital Transformation for Qatari Businesses",
				Ar: "التحول الرقمي للشركات القطرية",
			},
			Slug: "digital-transformation-qatar",
			Excerpt: models.LocalizedText{
				En: "Transform your business with digital solutions",
				Ar: "حوّل عملك بالحلول الرقمية",
			},
			Content: models.LocalizedText{
				En: "How digital solutions can transform your business operations and drive growth in Qatar's competitive market. Real case studies and insights...",
				Ar: "كيف يمكن للحلول الرقمية تحويل عمليات عملك ودفع النمو في سوق قطر التنافسي. دراسات حالة حقيقية ورؤى...",
			},
			Category: models.LocalizedText{
				En: "Digital Strategy",
				Ar: "الاستراتيجية الرقمية",
			},
			Author: models.LocalizedText{
				En: "Qatar Digital Solutions Team",
				Ar: "فريق حلول قطر الرقمية",
			},
			ImageURL:    "/attached_assets/stock_images/digital_transformati_8fee5be1.jpg",
			PublishedAt: time.Date(2024, time.September, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			configslog.Log.Error("Failed to seed blog post",
				zap.String("slug", posts[i].Slug),
				zap.Error(err),
			)
			return err
		}
	}
	configslog.SLog.Infof("Seeded %d blog posts.", len(posts))
	return nil
}
